// Package store persists session usage telemetry in SQLite.
//
// Every proxied session records one row: which route created it, the agent
// and session type, whether hybrid mode was active, the direct/delegated
// tool split, and the estimated prompt token cost. The data feeds capacity
// planning and token-budget tuning; it never blocks request handling, so
// callers log and continue on write failures.
//
// An empty database path disables the store entirely (NewUsageStore on ""
// returns a nil store whose methods are no-ops).
package store

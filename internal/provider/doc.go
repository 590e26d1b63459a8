// Package provider holds the HTTP clients for the upstream AI services:
// the completion provider (Responses API, realtime client secrets,
// conversations, JSON-mode chat) and the transcription provider
// (streaming tokens and batch diarization with polling).
//
// Both clients accept a per-call API key override so BYOK requests can
// substitute the caller's key for the configured one. Error responses from
// upstream are surfaced as *StatusError carrying the upstream status code
// and body, letting handlers mirror them to clients.
package provider

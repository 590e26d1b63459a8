// Package auth verifies client identity tokens on proxy endpoints.
//
// # Token Verification
//
// Clients attach RS256 JWTs issued by the identity provider. The verifier
// fetches the provider's public keys from its JWKS endpoint and caches them
// with a short TTL so key rotation is picked up without restarting.
//
// # Gradual Rollout
//
// Verification is optional: when no issuer domain is configured the
// middleware passes every request through and logs once that auth is
// disabled. This supports client versions that do not yet attach tokens.
//
// # Context Propagation
//
// On success the authenticated subject is attached to the request context
// via WithSubject and retrieved in handlers with SubjectFromContext.
package auth

// Package gateway is the HTTP edge of the proxy: it routes assistant client
// requests to the right session machinery and relays provider responses.
//
// # Routes
//
//   - /health — liveness probe
//   - /realtime — voice session creation (ephemeral realtime client secret)
//   - /responses — text agent SSE proxy (obfuscated or pass-through mode)
//   - /conversations — provider conversation creation for multi-turn state
//   - /delegate — hybrid-mode delegated action execution (non-streaming)
//   - /nudge-evaluate — unattended relay nudge decision
//   - /synthesize-report — unattended relay report synthesis
//   - /capabilities — help-surface capability listing per session/agent
//   - /transcribe/token — ephemeral streaming transcription token
//   - /transcribe — batch diarized transcription (upload and poll)
//
// Unknown paths get an explicit 404 naming the path.
//
// # Modes
//
// /responses runs in obfuscated mode when the body carries a session_type
// and no tools key: the prompt and tool list are assembled server-side so
// clients never see them. Any request with an explicit tools key is
// passed through untouched. Callers may override the configured provider
// key per request via the X-OpenAI-API-Key header (BYOK); the
// transcription routes accept X-AssemblyAI-API-Key the same way.
package gateway

// Package interviewer produces the AI interviewer's side of a session.
//
// It wraps an OpenAI-compatible chat-completion API. When the API is
// unconfigured or a call fails, a static fallback table keyed by interview
// phase answers instead so the user-facing request never fails on the LLM.
package interviewer

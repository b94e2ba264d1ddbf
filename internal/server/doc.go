// Package server provides the backend HTTP API.
//
// JSON REST surface over Echo: auth (register/login), interview-session
// CRUD, transcript capture, AI interviewer replies, analysis summaries,
// and the per-session WebSocket live feed. Authentication is a bearer JWT
// issued at login; handlers return structured errors that the errors
// middleware maps to HTTP responses.
package server

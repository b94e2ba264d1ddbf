// Package app provides the application service layer.
//
// Orchestrates use cases: registration and login, session lifecycle,
// transcript capture with live scoring, interviewer replies, summaries.
// Sits between HTTP handlers and domain repositories. Depends on domain
// interfaces, not concrete implementations.
package app

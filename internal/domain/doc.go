// Package domain holds the core types and interfaces of the application.
//
// Repositories and services are defined here as interfaces and implemented in
// the infrastructure packages (database, redis, interviewer, analysisclient).
// Handlers and the app layer depend only on these interfaces.
package domain

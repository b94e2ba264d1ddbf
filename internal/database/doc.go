// Package database provides PostgreSQL connectivity and repositories.
//
// Uses pgx for connection pooling and inline migrations at startup.
// Repositories implement the domain interfaces: UserRepository,
// SessionRepository, TranscriptRepository.
package database

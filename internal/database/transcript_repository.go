package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mockview/mockview/internal/domain"
)

const transcriptColumns = `id, session_id, speaker, text, client_timestamp, created_at`

// TranscriptRepo implements domain.TranscriptRepository backed by PostgreSQL.
type TranscriptRepo struct {
	db *DB
}

var _ domain.TranscriptRepository = (*TranscriptRepo)(nil)

// NewTranscriptRepo creates a TranscriptRepo from the shared DB connection.
func NewTranscriptRepo(db *DB) *TranscriptRepo {
	return &TranscriptRepo{db: db}
}

func scanTranscriptEntry(row pgx.Row) (*domain.TranscriptEntry, error) {
	var entry domain.TranscriptEntry
	err := row.Scan(
		&entry.ID, &entry.SessionID, &entry.Speaker, &entry.Text,
		&entry.Timestamp, &entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *TranscriptRepo) Append(ctx context.Context, sessionID uuid.UUID, speaker domain.Speaker, text, timestamp string) (*domain.TranscriptEntry, error) {
	entry, err := scanTranscriptEntry(r.db.Pool.QueryRow(ctx, `
		INSERT INTO transcript_entries (session_id, speaker, text, client_timestamp, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING `+transcriptColumns,
		sessionID, speaker, text, timestamp))
	if err != nil {
		return nil, fmt.Errorf("failed to append transcript entry: %w", err)
	}
	return entry, nil
}

func (r *TranscriptRepo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*domain.TranscriptEntry, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT `+transcriptColumns+`
		FROM transcript_entries
		WHERE session_id = $1
		ORDER BY created_at ASC`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transcript entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.TranscriptEntry, 0)
	for rows.Next() {
		entry, err := scanTranscriptEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transcript entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transcript entries: %w", err)
	}
	return entries, nil
}

func (r *TranscriptRepo) DeleteBySession(ctx context.Context, sessionID uuid.UUID) error {
	if _, err := r.db.Pool.Exec(ctx, `
		DELETE FROM transcript_entries
		WHERE session_id = $1`,
		sessionID); err != nil {
		return fmt.Errorf("failed to delete transcript entries: %w", err)
	}
	return nil
}

// Package sqlite provides a SQLite-backed inbox storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/brookmere/contactsite/internal/platform/storage/sqlitemigrate"
	"github.com/brookmere/contactsite/internal/services/inbox/storage"
	"github.com/brookmere/contactsite/internal/services/inbox/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

const defaultListLimit = 100

// Store persists inbox submissions in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite inbox store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// CreateSubmission inserts one submission record.
func (s *Store) CreateSubmission(ctx context.Context, submission storage.Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id := strings.TrimSpace(submission.ID)
	if id == "" {
		return fmt.Errorf("submission id is required")
	}
	receivedAt := submission.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO submissions (id, name, email, message, received_at)
		 VALUES (?, ?, ?, ?, ?)`,
		id,
		submission.Name,
		submission.Email,
		submission.Message,
		toMillis(receivedAt),
	)
	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

// GetSubmission loads one submission by id.
func (s *Store) GetSubmission(ctx context.Context, id string) (storage.Submission, error) {
	if err := ctx.Err(); err != nil {
		return storage.Submission{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Submission{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return storage.Submission{}, fmt.Errorf("submission id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, name, email, message, received_at FROM submissions WHERE id = ?`,
		id,
	)
	var submission storage.Submission
	var receivedAt int64
	err := row.Scan(&submission.ID, &submission.Name, &submission.Email, &submission.Message, &receivedAt)
	if err == sql.ErrNoRows {
		return storage.Submission{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.Submission{}, fmt.Errorf("scan submission: %w", err)
	}
	submission.ReceivedAt = fromMillis(receivedAt)
	return submission, nil
}

// ListSubmissions returns submissions newest first, capped at limit.
func (s *Store) ListSubmissions(ctx context.Context, limit int) ([]storage.Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, name, email, message, received_at
		 FROM submissions ORDER BY received_at DESC, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var submissions []storage.Submission
	for rows.Next() {
		var submission storage.Submission
		var receivedAt int64
		if err := rows.Scan(&submission.ID, &submission.Name, &submission.Email, &submission.Message, &receivedAt); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		submission.ReceivedAt = fromMillis(receivedAt)
		submissions = append(submissions, submission)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submissions: %w", err)
	}
	return submissions, nil
}

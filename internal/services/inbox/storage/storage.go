// Package storage defines persistence contracts for inbox submissions.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a requested submission record is missing.
var ErrNotFound = errors.New("record not found")

// Submission stores one accepted contact form submission.
type Submission struct {
	ID         string
	Name       string
	Email      string
	Message    string
	ReceivedAt time.Time
}

// SubmissionStore persists accepted submissions.
type SubmissionStore interface {
	// CreateSubmission inserts one submission record.
	CreateSubmission(ctx context.Context, submission Submission) error
	// GetSubmission loads one submission by id.
	GetSubmission(ctx context.Context, id string) (Submission, error)
	// ListSubmissions returns submissions newest first, capped at limit.
	ListSubmissions(ctx context.Context, limit int) ([]Submission, error)
}

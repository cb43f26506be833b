// Package uploads is the local journal of upload attempts made from this
// client, shown by the "uploads" command.
package uploads

import (
	"context"
	"time"

	"github.com/eduhub/eduhub/internal/client/models"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Record is one journal row.
type Record struct {
	ID         string
	Semester   int
	Subject    string
	Category   models.Category
	Title      string
	FileName   string
	Size       int64
	Status     Status
	Message    string
	ContentID  string
	CreatedAt  time.Time
	FinishedAt *time.Time
}

type Repository interface {
	// Start records a pending attempt and returns its id.
	Start(ctx context.Context, rec Record) (string, error)
	// Finish closes a pending attempt with its outcome.
	Finish(ctx context.Context, id string, status Status, message, contentID string) error
	// Recent lists the newest attempts first.
	Recent(ctx context.Context, limit int) ([]Record, error)
}

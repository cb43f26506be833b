package uploads

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eduhub/eduhub/internal/client/models"
	"github.com/eduhub/eduhub/internal/dbx"
)

type SQLiteRepository struct {
	db  dbx.DBTX
	now func() time.Time
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

func (r *SQLiteRepository) Start(ctx context.Context, rec Record) (string, error) {
	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO uploads (id, semester, subject, category, title, file_name, size, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, rec.Semester, rec.Subject, string(rec.Category), rec.Title, rec.FileName, rec.Size,
		string(StatusPending), r.now().UnixMilli())
	if err != nil {
		return "", fmt.Errorf("failed to record upload: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) Finish(ctx context.Context, id string, status Status, message, contentID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE uploads SET status = ?, message = ?, content_id = ?, finished_at = ?
		WHERE id = ?
	`, string(status), message, contentID, r.now().UnixMilli(), id)
	if err != nil {
		return fmt.Errorf("failed to finish upload %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("upload %s: %w", id, sql.ErrNoRows)
	}
	return nil
}

func (r *SQLiteRepository) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, semester, subject, category, title, file_name, size, status, message, content_id, created_at, finished_at
		FROM uploads
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list uploads: %w", err)
	}
	defer rows.Close()

	var result []Record
	for rows.Next() {
		var (
			rec       Record
			category  string
			status    string
			createdAt int64
			finished  sql.NullInt64
		)
		err := rows.Scan(&rec.ID, &rec.Semester, &rec.Subject, &category, &rec.Title, &rec.FileName,
			&rec.Size, &status, &rec.Message, &rec.ContentID, &createdAt, &finished)
		if err != nil {
			return nil, fmt.Errorf("failed to scan upload row: %w", err)
		}
		rec.Category = models.Category(category)
		rec.Status = Status(status)
		rec.CreatedAt = time.UnixMilli(createdAt).UTC()
		if finished.Valid {
			t := time.UnixMilli(finished.Int64).UTC()
			rec.FinishedAt = &t
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate uploads: %w", err)
	}
	return result, nil
}

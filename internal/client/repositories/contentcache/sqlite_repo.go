package contentcache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/eduhub/eduhub/internal/client/models"
	"github.com/eduhub/eduhub/internal/dbx"
)

type SQLiteRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

func (r *SQLiteRepository) Replace(ctx context.Context, query models.ContentQuery, items []models.ContentItem) error {
	key := query.Key()
	cachedAt := r.now().UnixMilli()

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM content_cache WHERE query_key = ?`, key); err != nil {
			return fmt.Errorf("failed to clear cached list %s: %w", key, err)
		}

		for i, item := range items {
			payload, err := json.Marshal(item)
			if err != nil {
				return fmt.Errorf("failed to encode item %s: %w", item.ID, err)
			}
			_, err = tx.ExecContext(ctx, `
				INSERT INTO content_cache (query_key, item_id, position, payload, cached_at)
				VALUES (?, ?, ?, ?, ?)
				ON CONFLICT(query_key, item_id) DO UPDATE SET
					position = excluded.position,
					payload = excluded.payload,
					cached_at = excluded.cached_at
			`, key, item.ID, i, string(payload), cachedAt)
			if err != nil {
				return fmt.Errorf("failed to cache item %s: %w", item.ID, err)
			}
		}

		// An empty list is still a valid snapshot; keep a marker row so Get
		// can tell "cached empty" from "never cached".
		if len(items) == 0 {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO content_cache (query_key, item_id, position, payload, cached_at)
				VALUES (?, '', -1, '', ?)
			`, key, cachedAt)
			if err != nil {
				return fmt.Errorf("failed to cache empty list %s: %w", key, err)
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) Get(ctx context.Context, query models.ContentQuery) (Snapshot, bool, error) {
	key := query.Key()
	rows, err := r.db.QueryContext(ctx, `
		SELECT item_id, payload, cached_at FROM content_cache
		WHERE query_key = ?
		ORDER BY position
	`, key)
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("failed to read cached list %s: %w", key, err)
	}
	defer rows.Close()

	var (
		snap  Snapshot
		found bool
	)
	snap.Items = []models.ContentItem{}
	for rows.Next() {
		var (
			id, payload string
			cachedAt    int64
		)
		if err := rows.Scan(&id, &payload, &cachedAt); err != nil {
			return Snapshot{}, false, fmt.Errorf("failed to scan cached item: %w", err)
		}
		found = true
		snap.CachedAt = time.UnixMilli(cachedAt).UTC()
		if id == "" {
			continue
		}
		var item models.ContentItem
		if err := json.Unmarshal([]byte(payload), &item); err != nil {
			return Snapshot{}, false, fmt.Errorf("failed to decode cached item %s: %w", id, err)
		}
		snap.Items = append(snap.Items, item)
	}
	if err := rows.Err(); err != nil {
		return Snapshot{}, false, fmt.Errorf("failed to iterate cached items: %w", err)
	}

	if !found {
		return Snapshot{}, false, nil
	}
	return snap, true, nil
}

func (r *SQLiteRepository) RemoveItem(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM content_cache WHERE item_id = ?`, id); err != nil {
		return fmt.Errorf("failed to remove cached item %s: %w", id, err)
	}
	return nil
}

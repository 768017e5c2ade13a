package staging

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/lovesurprise/internal/client/models"
	"github.com/dmitrijs2005/lovesurprise/internal/common"
	"github.com/dmitrijs2005/lovesurprise/internal/dbx"
)

const suffixLen = 9

type SQLiteRepository struct {
	db     *sql.DB
	now    func() time.Time
	suffix func() (string, error)
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{
		db:     db,
		now:    time.Now,
		suffix: func() (string, error) { return common.MakeRandBase36String(suffixLen) },
	}
}

// newID builds "file_<unix-millis>_<random suffix>", retrying when the id
// is already taken by the batch being saved.
func (r *SQLiteRepository) newID(ts time.Time, taken map[string]struct{}) (string, error) {
	for {
		s, err := r.suffix()
		if err != nil {
			return "", err
		}
		id := fmt.Sprintf("file_%d_%s", ts.UnixMilli(), s)
		if _, dup := taken[id]; !dup {
			taken[id] = struct{}{}
			return id, nil
		}
	}
}

func (r *SQLiteRepository) Save(ctx context.Context, files []models.FileData) ([]string, error) {
	ids := make([]string, 0, len(files))
	if len(files) == 0 {
		return ids, nil
	}

	now := r.now()
	taken := make(map[string]struct{}, len(files))

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, f := range files {
			id, err := r.newID(now, taken)
			if err != nil {
				return fmt.Errorf("generate id: %w", err)
			}

			_, err = tx.ExecContext(ctx,
				`INSERT INTO staged_files (id, name, content_type, content, created_at) VALUES (?, ?, ?, ?, ?)`,
				id, f.Name, f.ContentType, f.Content, now.UnixMilli())
			if err != nil {
				return fmt.Errorf("insert %s: %w", id, err)
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}

	return ids, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, ids []string) ([]*models.StagedFile, error) {
	result := make([]*models.StagedFile, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, content_type, content, created_at FROM staged_files WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageRead, err)
	}
	defer rows.Close()

	found := make(map[string]*models.StagedFile, len(ids))
	for rows.Next() {
		f := &models.StagedFile{}
		var created int64
		if err := rows.Scan(&f.ID, &f.Name, &f.ContentType, &f.Content, &created); err != nil {
			return nil, fmt.Errorf("%w: scan: %w", ErrStorageRead, err)
		}
		f.CreatedAt = time.UnixMilli(created)
		found[f.ID] = f
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageRead, err)
	}

	for i, id := range ids {
		result[i] = found[id]
	}

	return result, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, id := range ids {
			if _, err := tx.ExecContext(ctx, `DELETE FROM staged_files WHERE id = ?`, id); err != nil {
				return fmt.Errorf("delete %s: %w", id, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM staged_files`); err != nil {
		return fmt.Errorf("%w: clear: %w", ErrStorageWrite, err)
	}
	return nil
}

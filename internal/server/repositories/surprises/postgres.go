// Package surprises persists surprise pages and their photos in PostgreSQL.
package surprises

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/lovesurprise/internal/common"
	"github.com/dmitrijs2005/lovesurprise/internal/dbx"
	"github.com/dmitrijs2005/lovesurprise/internal/server/models"
)

const surpriseColumns = `id, user_id, couple_name, to_char(start_date, 'YYYY-MM-DD'), message, youtube_link,
		plan_id, status, activated_at, created_at, updated_at`

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts s in status draft and fills the server-generated fields.
func (r *PostgresRepository) Create(ctx context.Context, s *models.Surprise) (*models.Surprise, error) {
	query := `
		INSERT INTO surprises (user_id, couple_name, start_date, message, youtube_link, plan_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, status, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		s.UserID, s.CoupleName, s.StartDate, s.Message, s.YoutubeLink, s.PlanID).
		Scan(&s.ID, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) AddPhoto(ctx context.Context, p *models.Photo) (*models.Photo, error) {
	query := `
		INSERT INTO surprise_photos (surprise_id, storage_key, content_type, size, order_index)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query, p.SurpriseID, p.StorageKey, p.ContentType, p.Size, p.OrderIndex).Scan(&p.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

// GetByID returns the surprise without photos, or common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Surprise, error) {
	query := `SELECT ` + surpriseColumns + ` FROM surprises WHERE id = $1`

	s, err := scanSurprise(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

// ListByUser returns the surprises of userID, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Surprise, error) {
	query := `SELECT ` + surpriseColumns + ` FROM surprises
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select surprises: %w", err)
	}
	defer rows.Close()

	var result []*models.Surprise
	for rows.Next() {
		s, err := scanSurprise(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id, from, to string, at time.Time) error {
	query := `
		UPDATE surprises
		SET status = $1, activated_at = COALESCE(activated_at, $2), updated_at = $2
		WHERE id = $3 AND status = $4
	`
	res, err := r.db.ExecContext(ctx, query, to, at, id, from)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrInvalidStatus
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

// MarkPhotosUploaded flags each photo as uploaded. Every id must belong to
// surpriseID, otherwise common.ErrorNotFound is returned.
func (r *PostgresRepository) MarkPhotosUploaded(ctx context.Context, surpriseID string, photoIDs []string) error {
	query := `UPDATE surprise_photos SET uploaded = true WHERE id = $1 AND surprise_id = $2`
	for _, id := range photoIDs {
		res, err := r.db.ExecContext(ctx, query, id, surpriseID)
		if err != nil {
			return fmt.Errorf("failed to mark uploaded: %w", err)
		}
		ra, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if ra != 1 {
			return fmt.Errorf("%w: photo %s", common.ErrorNotFound, id)
		}
	}
	return nil
}

func (r *PostgresRepository) Photos(ctx context.Context, surpriseID string) ([]*models.Photo, error) {
	query := `SELECT id, surprise_id, storage_key, content_type, size, order_index, uploaded
		FROM surprise_photos
		WHERE surprise_id = $1
		ORDER BY order_index`

	rows, err := r.db.QueryContext(ctx, query, surpriseID)
	if err != nil {
		return nil, fmt.Errorf("failed to select photos: %w", err)
	}
	defer rows.Close()

	var result []*models.Photo
	for rows.Next() {
		var p models.Photo
		if err := rows.Scan(&p.ID, &p.SurpriseID, &p.StorageKey, &p.ContentType, &p.Size, &p.OrderIndex, &p.Uploaded); err != nil {
			return nil, err
		}
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSurprise(row scanner) (*models.Surprise, error) {
	var (
		s         models.Surprise
		activated sql.NullTime
	)
	err := row.Scan(&s.ID, &s.UserID, &s.CoupleName, &s.StartDate, &s.Message, &s.YoutubeLink,
		&s.PlanID, &s.Status, &activated, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if activated.Valid {
		t := activated.Time
		s.ActivatedAt = &t
	}
	return &s, nil
}

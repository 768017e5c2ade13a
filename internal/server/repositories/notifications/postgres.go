// Package notifications stores the messages shown to a surprise owner, such
// as "your surprise was viewed".
package notifications

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lovesurprise/internal/dbx"
	"github.com/dmitrijs2005/lovesurprise/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	query := `
		INSERT INTO notifications (user_id, surprise_id, type, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	if err := r.db.QueryRowContext(ctx, query, n.UserID, n.SurpriseID, n.Type, n.Message).Scan(&n.ID, &n.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

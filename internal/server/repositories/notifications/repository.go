package notifications

import (
	"context"

	"github.com/dmitrijs2005/lovesurprise/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, n *models.Notification) (*models.Notification, error)
}

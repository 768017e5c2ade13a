package surprises

import (
	"context"
	"time"

	"github.com/dmitrijs2005/lovesurprise/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, s *models.Surprise) (*models.Surprise, error)
	AddPhoto(ctx context.Context, p *models.Photo) (*models.Photo, error)
	GetByID(ctx context.Context, id string) (*models.Surprise, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Surprise, error)
	// UpdateStatus moves a surprise from one status to another.
	// common.ErrInvalidStatus is returned when the row is not in status from.
	UpdateStatus(ctx context.Context, id, from, to string, at time.Time) error
	MarkPhotosUploaded(ctx context.Context, surpriseID string, photoIDs []string) error
	Photos(ctx context.Context, surpriseID string) ([]*models.Photo, error)
}

package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/lovesurprise/internal/server/models"
)

type Repository interface {
	// Create stores token for userID, valid until expiresAt.
	Create(ctx context.Context, userID string, token string, expiresAt time.Time) error

	// Find returns common.ErrorNotFound when the token is absent.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete removes a token. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
}

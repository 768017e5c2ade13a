package users

import (
	"context"

	"github.com/dmitrijs2005/lovesurprise/internal/server/models"
)

type Repository interface {
	// Create inserts user and fills its ID and CreatedAt. A taken email
	// yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	// Update stores the Name and PasswordHash of an existing user.
	Update(ctx context.Context, user *models.User) error
}

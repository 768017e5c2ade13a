package client

import (
	"context"

	"github.com/dmitrijs2005/lovesurprise/internal/client/models"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Register(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	// Session returns the user bound to the current credentials.
	// ErrUnauthorized means no usable session yet.
	Session(ctx context.Context) (*models.Session, error)
	// UpdateProfile changes the display name and/or password of the signed
	// in user. Empty values are left unchanged.
	UpdateProfile(ctx context.Context, currentPassword, newName, newPassword string) (*models.Session, error)

	CreateSurprise(ctx context.Context, req models.NewSurprise) (*models.CreatedSurprise, error)
	MarkUploaded(ctx context.Context, surpriseID string, photoIDs []string) error
	GetSurprise(ctx context.Context, id string) (*models.Surprise, error)
	ListSurprises(ctx context.Context) ([]*models.Surprise, error)
	UpdateSurpriseStatus(ctx context.Context, id string, status string) error
	// ViewSurprise opens the public page of a surprise.
	ViewSurprise(ctx context.Context, id string) (*models.Surprise, error)
}

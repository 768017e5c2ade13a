package staging

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/lovesurprise/internal/client/models"
)

var (
	ErrStorageWrite = errors.New("staging: storage write failed")
	ErrStorageRead  = errors.New("staging: storage read failed")
)

type Repository interface {
	// Save stages files and returns their ids in input order. On error
	// nothing is staged.
	Save(ctx context.Context, files []models.FileData) ([]string, error)

	// Get resolves ids in order. The element for an id that is not staged
	// is nil; that is not an error.
	Get(ctx context.Context, ids []string) ([]*models.StagedFile, error)

	// Delete removes the given ids. Unknown ids are skipped.
	Delete(ctx context.Context, ids []string) error

	// Clear removes every staged file.
	Clear(ctx context.Context) error
}

// Package photostore hands out presigned object-storage URLs for surprise
// photos. Clients upload and download the bytes directly; the server only
// signs.
package photostore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/lovesurprise/internal/server/config"
)

// Store presigns photo uploads and downloads.
type Store interface {
	PresignPut(ctx context.Context, key string) (string, error)
	PresignGet(ctx context.Context, key string) (string, error)
}

// NewKey returns a fresh object key for a photo of surpriseID.
func NewKey(surpriseID string, now time.Time) string {
	return fmt.Sprintf("surprises/%d/%02d/%02d/%s/%s", now.Year(), now.Month(), now.Day(), surpriseID, uuid.New())
}

// New builds the Store selected by cfg.StorageDriver.
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StorageDriver {
	case config.StorageS3:
		return NewS3Store(ctx, cfg)
	case config.StorageMinIO:
		return NewMinIOStore(cfg)
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

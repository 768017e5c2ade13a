package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lovesurprise/internal/client/client"
	"github.com/dmitrijs2005/lovesurprise/internal/client/models"
)

type SurpriseService interface {
	List(ctx context.Context) ([]*models.Surprise, error)
	// Show returns a surprise owned by the signed-in user.
	Show(ctx context.Context, id string) (*models.Surprise, error)
	// View opens the public page of an active surprise.
	View(ctx context.Context, id string) (*models.Surprise, error)
}

type surpriseService struct {
	client client.Client
}

func NewSurpriseService(c client.Client) SurpriseService {
	return &surpriseService{client: c}
}

func (s *surpriseService) List(ctx context.Context) ([]*models.Surprise, error) {
	items, err := s.client.ListSurprises(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing surprises: %w", err)
	}
	return items, nil
}

func (s *surpriseService) Show(ctx context.Context, id string) (*models.Surprise, error) {
	sp, err := s.client.GetSurprise(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving surprise: %w", err)
	}
	return sp, nil
}

func (s *surpriseService) View(ctx context.Context, id string) (*models.Surprise, error) {
	sp, err := s.client.ViewSurprise(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error opening surprise: %w", err)
	}
	return sp, nil
}

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/lovesurprise/internal/client/client"
	"github.com/dmitrijs2005/lovesurprise/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/lovesurprise/internal/share"
	"github.com/dmitrijs2005/lovesurprise/internal/surprise"
)

// LastPaymentKey holds the id of the last surprise whose payment was
// confirmed on this device.
const LastPaymentKey = "payment:last"

var ErrAlreadyProcessed = errors.New("payment already processed")

type PaymentService interface {
	// Confirm activates a paid surprise and returns its public link.
	Confirm(ctx context.Context, surpriseID string) (string, error)
	// CheckStatus reports whether the surprise is active. The id of the last
	// confirmed payment always reports false.
	CheckStatus(ctx context.Context, surpriseID string) (bool, error)
	ClearLastPayment(ctx context.Context) error
}

type paymentService struct {
	client    client.Client
	kv        metadata.Repository
	shareBase string
}

func NewPaymentService(c client.Client, kv metadata.Repository, shareBase string) PaymentService {
	return &paymentService{client: c, kv: kv, shareBase: shareBase}
}

func (s *paymentService) lastPayment(ctx context.Context) (string, error) {
	v, _, err := s.kv.Get(ctx, LastPaymentKey)
	return v, err
}

func (s *paymentService) Confirm(ctx context.Context, surpriseID string) (string, error) {
	if surpriseID == "" {
		return "", fmt.Errorf("%w: empty surprise id", client.ErrInvalidArgument)
	}

	last, err := s.lastPayment(ctx)
	if err != nil {
		return "", err
	}
	if last == surpriseID {
		return "", fmt.Errorf("%w: %s", ErrAlreadyProcessed, surpriseID)
	}

	if err := s.client.UpdateSurpriseStatus(ctx, surpriseID, string(surprise.StatusActive)); err != nil {
		return "", fmt.Errorf("activate surprise: %w", err)
	}

	if err := s.kv.Set(ctx, LastPaymentKey, surpriseID); err != nil {
		return "", fmt.Errorf("store payment marker: %w", err)
	}

	return share.Link(s.shareBase, surpriseID), nil
}

func (s *paymentService) CheckStatus(ctx context.Context, surpriseID string) (bool, error) {
	last, err := s.lastPayment(ctx)
	if err != nil {
		return false, err
	}
	if last == surpriseID {
		return false, nil
	}

	sp, err := s.client.GetSurprise(ctx, surpriseID)
	if err != nil {
		return false, err
	}
	return sp.Status == string(surprise.StatusActive), nil
}

func (s *paymentService) ClearLastPayment(ctx context.Context) error {
	return s.kv.Delete(ctx, LastPaymentKey)
}

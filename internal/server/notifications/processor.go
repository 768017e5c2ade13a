package notifications

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/dmitrijs2005/lovesurprise/internal/logging"
	"github.com/dmitrijs2005/lovesurprise/internal/server/models"
	"github.com/dmitrijs2005/lovesurprise/internal/server/repositories/notifications"
)

// Processor is plugged into the asynq worker loop.
type Processor struct {
	repo notifications.Repository
	log  logging.Logger
}

func NewProcessor(repo notifications.Repository, log logging.Logger) *Processor {
	return &Processor{repo: repo, log: log}
}

// Handler registers the task handlers.
func (p *Processor) Handler() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeViewed, p.handleViewed)
	return mux
}

func (p *Processor) handleViewed(ctx context.Context, task *asynq.Task) error {
	var payload ViewedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
	}
	if payload.UserID == "" || payload.SurpriseID == "" {
		return fmt.Errorf("incomplete payload: %w", asynq.SkipRetry)
	}

	n, err := p.repo.Create(ctx, &models.Notification{
		UserID:     payload.UserID,
		SurpriseID: payload.SurpriseID,
		Type:       models.NotificationViewed,
		Message:    ViewedMessage(payload.CoupleName),
	})
	if err != nil {
		p.log.Error(ctx, "notification insert failed", "surprise_id", payload.SurpriseID, "error", err)
		return err
	}

	p.log.Info(ctx, "notification stored", "id", n.ID, "surprise_id", payload.SurpriseID)
	return nil
}

// Package notifications moves "surprise viewed" events from the gRPC server
// to the worker through an asynq (Redis) queue.
package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

// TypeViewed is enqueued each time a public surprise page is served.
const TypeViewed = "notification:viewed"

// ViewedPayload is serialized into the task payload.
type ViewedPayload struct {
	UserID     string `json:"user_id"`
	SurpriseID string `json:"surprise_id"`
	CoupleName string `json:"couple_name"`
}

// ViewedMessage is the text shown to the owner of a viewed surprise.
func ViewedMessage(coupleName string) string {
	return fmt.Sprintf("Sua surpresa \"%s\" foi visualizada!", coupleName)
}

type taskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Enqueuer publishes notification tasks.
type Enqueuer struct {
	client taskEnqueuer
}

func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

// NotifyViewed enqueues a TypeViewed task.
func (e *Enqueuer) NotifyViewed(ctx context.Context, p ViewedPayload) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	task := asynq.NewTask(TypeViewed, data)
	if _, err := e.client.EnqueueContext(ctx, task, asynq.MaxRetry(5), asynq.Timeout(30*time.Second)); err != nil {
		return fmt.Errorf("enqueue viewed task: %w", err)
	}
	return nil
}

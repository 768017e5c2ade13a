package handoff

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/dmitrijs2005/lovesurprise/internal/client/models"
	"github.com/dmitrijs2005/lovesurprise/internal/logging"
)

// SessionWaiter blocks until the backend session of the new account is
// usable, or gives up.
type SessionWaiter interface {
	Wait(ctx context.Context) (*models.Session, error)
}

// SessionAccessor reads the current session from the backend.
type SessionAccessor interface {
	Session(ctx context.Context) (*models.Session, error)
}

var errNoSession = errors.New("no session yet")

// PollingWaiter asks the session accessor up to Attempts times, Interval
// apart.
type PollingWaiter struct {
	sessions SessionAccessor
	attempts int
	interval time.Duration
	log      logging.Logger

	newBackoff func() retry.Backoff
}

func NewPollingWaiter(sessions SessionAccessor, attempts int, interval time.Duration, log logging.Logger) *PollingWaiter {
	if attempts < 1 {
		attempts = 1
	}
	w := &PollingWaiter{sessions: sessions, attempts: attempts, interval: interval, log: log}
	w.newBackoff = w.constantBackoff
	return w
}

func (w *PollingWaiter) constantBackoff() retry.Backoff {
	var b retry.Backoff
	if w.interval > 0 {
		b = retry.NewConstant(w.interval)
	} else {
		b = retry.BackoffFunc(func() (time.Duration, bool) { return 0, false })
	}
	return retry.WithMaxRetries(uint64(w.attempts-1), b)
}

func (w *PollingWaiter) Wait(ctx context.Context) (*models.Session, error) {
	attempt := 0
	return retry.DoValue(ctx, w.newBackoff(), func(ctx context.Context) (*models.Session, error) {
		attempt++
		s, err := w.sessions.Session(ctx)
		if err == nil && s == nil {
			err = errNoSession
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			w.log.Debug(ctx, "session not ready", "attempt", attempt, "of", w.attempts, "error", err)
			return nil, retry.RetryableError(err)
		}
		return s, nil
	})
}

// SessionNotifier delivers the session once the backend reports it ready.
// The channel yields at most one value and may be closed without one.
type SessionNotifier interface {
	SessionReady(ctx context.Context) <-chan *models.Session
}

// NotifyWaiter waits for a push from a SessionNotifier instead of polling.
// A zero Timeout relies on the caller's context alone.
type NotifyWaiter struct {
	Source  SessionNotifier
	Timeout time.Duration
}

func (w *NotifyWaiter) Wait(ctx context.Context) (*models.Session, error) {
	if w.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.Timeout)
		defer cancel()
	}

	select {
	case s, ok := <-w.Source.SessionReady(ctx):
		if !ok || s == nil {
			return nil, errNoSession
		}
		return s, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

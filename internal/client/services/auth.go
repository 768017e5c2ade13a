// Package services contains application services for the LoveSurprise client.
// This file defines the authentication service: register, login and logout
// against the server, plus resuming a pending surprise handoff once the new
// session exists.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/lovesurprise/internal/client/client"
	"github.com/dmitrijs2005/lovesurprise/internal/client/handoff"
	"github.com/dmitrijs2005/lovesurprise/internal/client/models"
	"github.com/dmitrijs2005/lovesurprise/internal/logging"
)

var (
	ErrPasswordMismatch = errors.New("new password and confirmation do not match")
	ErrNoChanges        = errors.New("no changes")
)

// ProfileChange is what the settings panel submits. Empty NewName or
// NewPassword keeps the current value.
type ProfileChange struct {
	CurrentPassword string
	NewName         string
	NewPassword     string
	ConfirmPassword string
}

// AuthService defines authentication operations for the CLI.
//
// Register and Login return the handoff result of the most recent pending
// draft, or nil when there was nothing to hand off. A failed handoff is not
// an error of the call: the account exists and the draft stays pending.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*handoff.Result, error)
	Login(ctx context.Context, email, password string) (*handoff.Result, error)
	// Resume hands off the most recent pending draft with the current session.
	Resume(ctx context.Context) (*handoff.Result, error)
	Logout(ctx context.Context) error
	// UpdateProfile checks the change locally and sends it to the server.
	UpdateProfile(ctx context.Context, ch ProfileChange) (*models.Session, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// PendingLister lists attempts that still hold a draft, oldest first.
type PendingLister interface {
	Pending(ctx context.Context) ([]string, error)
}

// HandoffRunner runs a single attempt.
type HandoffRunner interface {
	Run(ctx context.Context, a handoff.Attempt) *handoff.Result
}

type authService struct {
	client  client.Client
	pending PendingLister
	runner  HandoffRunner
	log     logging.Logger
	now     func() time.Time
}

func NewAuthService(c client.Client, pending PendingLister, runner HandoffRunner, log logging.Logger) AuthService {
	return &authService{client: c, pending: pending, runner: runner, log: log, now: time.Now}
}

func (a *authService) Register(ctx context.Context, name, email, password string) (*handoff.Result, error) {
	if err := a.client.Register(ctx, name, email, password); err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	return a.Resume(ctx)
}

func (a *authService) Login(ctx context.Context, email, password string) (*handoff.Result, error) {
	if err := a.client.Login(ctx, email, password); err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	return a.Resume(ctx)
}

func (a *authService) Resume(ctx context.Context) (*handoff.Result, error) {
	ids, err := a.pending.Pending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending drafts: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	id := ids[len(ids)-1]
	if len(ids) > 1 {
		a.log.Info(ctx, "older drafts left pending", "count", len(ids)-1)
	}
	return a.runner.Run(ctx, handoff.Attempt{ID: id, StartedAt: a.now()}), nil
}

// Logout drops the session. Pending drafts are kept.
func (a *authService) Logout(ctx context.Context) error {
	return a.client.Logout(ctx)
}

func (a *authService) UpdateProfile(ctx context.Context, ch ProfileChange) (*models.Session, error) {
	ch.NewName = strings.TrimSpace(ch.NewName)
	if ch.NewPassword != ch.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if ch.NewName == "" && ch.NewPassword == "" {
		return nil, ErrNoChanges
	}

	s, err := a.client.UpdateProfile(ctx, ch.CurrentPassword, ch.NewName, ch.NewPassword)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	a.log.Info(ctx, "profile updated", "user_id", s.UserID, "password_changed", ch.NewPassword != "")
	return s, nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}

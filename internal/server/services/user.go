// Package services contains server-side business logic: accounts and tokens
// (UserService) and surprise pages (SurpriseService).
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/lovesurprise/internal/common"
	"github.com/dmitrijs2005/lovesurprise/internal/dbx"
	"github.com/dmitrijs2005/lovesurprise/internal/server/auth"
	"github.com/dmitrijs2005/lovesurprise/internal/server/config"
	"github.com/dmitrijs2005/lovesurprise/internal/server/models"
	"github.com/dmitrijs2005/lovesurprise/internal/server/repositories/repomanager"
)

const minPasswordLen = 6

var (
	hashPassword = func(pw []byte) ([]byte, error) {
		return bcrypt.GenerateFromPassword(pw, bcrypt.DefaultCost)
	}
	comparePassword = bcrypt.CompareHashAndPassword
)

// dummyHash is compared against when the email is unknown, so both
// branches of Login cost one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("lovesurprise-dummy"), bcrypt.MinCost)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// UserService handles registration, login, profile changes and token
// rotation.
type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	now                          func() time.Time
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		now:                          time.Now,
	}
}

// Register creates an account and signs it in. The user row and its first
// refresh token are written in one transaction.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, *TokenPair, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if err := validateCredentials(name, email, password); err != nil {
		return nil, nil, err
	}

	hash, err := hashPassword([]byte(password))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	var (
		user *models.User
		pair *TokenPair
	)
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		u, err := s.repomanager.Users(tx).Create(ctx, &models.User{Name: name, Email: email, PasswordHash: hash})
		if err != nil {
			return fmt.Errorf("error creating user: %w", err)
		}
		user = u
		pair, err = s.generateTokenPair(ctx, u.ID, tx)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Login verifies email and password and mints a new TokenPair.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, *TokenPair, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = comparePassword(dummyHash, []byte(password))
			return nil, nil, common.ErrorUnauthorized
		}
		return nil, nil, common.ErrorInternal
	}
	if err := comparePassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, nil, common.ErrorUnauthorized
	}

	pair, err := s.generateTokenPair(ctx, user.ID, s.db)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// RefreshToken validates a refresh token, rotates it transactionally, and
// returns a fresh TokenPair. Expired tokens yield ErrRefreshTokenExpired.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	repo := s.repomanager.RefreshTokens(s.db)

	token, err := repo.Find(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expires.Before(s.now()) {
		return nil, common.ErrRefreshTokenExpired
	}

	var pair *TokenPair
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.RefreshTokens(tx).Delete(ctx, refreshToken); err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		var genErr error
		pair, genErr = s.generateTokenPair(ctx, token.UserID, tx)
		return genErr
	}); err != nil {
		return nil, err
	}
	return pair, nil
}

// Logout revokes a refresh token. Access tokens stay valid until they expire.
func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.repomanager.RefreshTokens(s.db).Delete(ctx, refreshToken)
}

// Session returns the account behind an authenticated request.
func (s *UserService) Session(ctx context.Context, userID string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, userID)
}

// UpdateProfile changes the display name and/or the password after checking
// the current password. An empty newName or newPassword keeps that field.
func (s *UserService) UpdateProfile(ctx context.Context, userID, currentPassword, newName, newPassword string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := comparePassword(user.PasswordHash, []byte(currentPassword)); err != nil {
		return nil, fmt.Errorf("%w: current password is wrong", common.ErrorForbidden)
	}

	updated := *user
	newName = strings.TrimSpace(newName)
	changed := false
	if newName != "" && newName != user.Name {
		updated.Name = newName
		changed = true
	}
	if newPassword != "" {
		if utf8.RuneCountInString(newPassword) < minPasswordLen {
			return nil, fmt.Errorf("%w: password must have at least %d characters", common.ErrorValidation, minPasswordLen)
		}
		hash, err := hashPassword([]byte(newPassword))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
		}
		updated.PasswordHash = hash
		changed = true
	}
	if !changed {
		return nil, fmt.Errorf("%w: no changes", common.ErrorValidation)
	}

	if err := repo.Update(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func validateCredentials(name, email, password string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email", common.ErrorValidation)
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		return fmt.Errorf("%w: password must have at least %d characters", common.ErrorValidation, minPasswordLen)
	}
	return nil
}

func (s *UserService) generateTokenPair(ctx context.Context, userID string, tx dbx.DBTX) (*TokenPair, error) {
	access, err := auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if err := s.repomanager.RefreshTokens(tx).Create(ctx, userID, refresh, s.now().Add(s.refreshTokenValidityDuration)); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

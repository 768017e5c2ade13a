package grpc

import (
	"context"

	"github.com/dmitrijs2005/lovesurprise/internal/logging"
	"github.com/dmitrijs2005/lovesurprise/internal/server/models"
	"github.com/dmitrijs2005/lovesurprise/internal/server/services"
)

type fakeUsers struct {
	user   *models.User
	tokens *services.TokenPair
	err    error

	gotName, gotEmail, gotPassword string
	gotRefresh                     string
	gotSessionID                   string
	gotProfile                     []string
}

func (f *fakeUsers) Register(ctx context.Context, name, email, password string) (*models.User, *services.TokenPair, error) {
	f.gotName, f.gotEmail, f.gotPassword = name, email, password
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.user, f.tokens, nil
}

func (f *fakeUsers) Login(ctx context.Context, email, password string) (*models.User, *services.TokenPair, error) {
	f.gotEmail, f.gotPassword = email, password
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.user, f.tokens, nil
}

func (f *fakeUsers) RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error) {
	f.gotRefresh = refreshToken
	if f.err != nil {
		return nil, f.err
	}
	return f.tokens, nil
}

func (f *fakeUsers) Logout(ctx context.Context, refreshToken string) error {
	f.gotRefresh = refreshToken
	return f.err
}

func (f *fakeUsers) Session(ctx context.Context, userID string) (*models.User, error) {
	f.gotSessionID = userID
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeUsers) UpdateProfile(ctx context.Context, userID, currentPassword, newName, newPassword string) (*models.User, error) {
	f.gotProfile = []string{userID, currentPassword, newName, newPassword}
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

type fakeSurprises struct {
	created *models.Surprise
	tasks   []*models.PhotoUploadTask
	details *services.SurpriseDetails
	list    []*models.Surprise
	err     error

	gotUserID string
	gotInput  services.CreateSurpriseInput
	gotID     string
	gotPhotos []string
	gotStatus string
}

func (f *fakeSurprises) Create(ctx context.Context, userID string, in services.CreateSurpriseInput) (*models.Surprise, []*models.PhotoUploadTask, error) {
	f.gotUserID, f.gotInput = userID, in
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.created, f.tasks, nil
}

func (f *fakeSurprises) MarkUploaded(ctx context.Context, userID, id string, photoIDs []string) error {
	f.gotUserID, f.gotID, f.gotPhotos = userID, id, photoIDs
	return f.err
}

func (f *fakeSurprises) Get(ctx context.Context, userID, id string) (*services.SurpriseDetails, error) {
	f.gotUserID, f.gotID = userID, id
	if f.err != nil {
		return nil, f.err
	}
	return f.details, nil
}

func (f *fakeSurprises) List(ctx context.Context, userID string) ([]*models.Surprise, error) {
	f.gotUserID = userID
	return f.list, f.err
}

func (f *fakeSurprises) UpdateStatus(ctx context.Context, userID, id, status string) error {
	f.gotUserID, f.gotID, f.gotStatus = userID, id, status
	return f.err
}

func (f *fakeSurprises) View(ctx context.Context, id string) (*services.SurpriseDetails, error) {
	f.gotID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.details, nil
}

func newTestServer(u *fakeUsers, s *fakeSurprises) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.Nop{}, u, s, "secret")
}

func withUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

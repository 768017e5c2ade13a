package services

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/lovesurprise/internal/client/client"
	"github.com/dmitrijs2005/lovesurprise/internal/client/handoff"
	"github.com/dmitrijs2005/lovesurprise/internal/client/models"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// fakeClient implements client.Client for service unit tests.
type fakeClient struct {
	CloseErr    error
	PingErr     error
	RegisterErr error
	LoginErr    error
	LogoutErr   error

	UpdateStatusErr error
	GetRet          *models.Surprise
	GetErr          error
	ListRet         []*models.Surprise
	ListErr         error
	ViewRet         *models.Surprise
	ViewErr         error

	LastRegister []string
	LastLogin    []string
	LogoutCalls  int
	LastStatusID string
	LastStatus   string
	UpdateCalls  int
	LastGetID    string
	LastViewID   string

	ProfileRet   *models.Session
	ProfileErr   error
	LastProfile  []string
	ProfileCalls int
}

func (f *fakeClient) Close() error                   { return f.CloseErr }
func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }

func (f *fakeClient) Register(ctx context.Context, name, email, password string) error {
	f.LastRegister = []string{name, email, password}
	return f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, email, password string) error {
	f.LastLogin = []string{email, password}
	return f.LoginErr
}

func (f *fakeClient) Logout(ctx context.Context) error {
	f.LogoutCalls++
	return f.LogoutErr
}

func (f *fakeClient) Session(ctx context.Context) (*models.Session, error) {
	return &models.Session{UserID: "u1"}, nil
}

func (f *fakeClient) UpdateProfile(ctx context.Context, currentPassword, newName, newPassword string) (*models.Session, error) {
	f.ProfileCalls++
	f.LastProfile = []string{currentPassword, newName, newPassword}
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) CreateSurprise(ctx context.Context, req models.NewSurprise) (*models.CreatedSurprise, error) {
	return nil, client.ErrUnavailable
}

func (f *fakeClient) MarkUploaded(ctx context.Context, surpriseID string, photoIDs []string) error {
	return nil
}

func (f *fakeClient) GetSurprise(ctx context.Context, id string) (*models.Surprise, error) {
	f.LastGetID = id
	return f.GetRet, f.GetErr
}

func (f *fakeClient) ListSurprises(ctx context.Context) ([]*models.Surprise, error) {
	return f.ListRet, f.ListErr
}

func (f *fakeClient) UpdateSurpriseStatus(ctx context.Context, id string, status string) error {
	f.UpdateCalls++
	f.LastStatusID = id
	f.LastStatus = status
	return f.UpdateStatusErr
}

func (f *fakeClient) ViewSurprise(ctx context.Context, id string) (*models.Surprise, error) {
	f.LastViewID = id
	return f.ViewRet, f.ViewErr
}

// stubBackend accepts every surprise and upload for handoffs run against a
// real staging store.
type stubBackend struct {
	created []models.NewSurprise
}

func (b *stubBackend) CreateSurprise(ctx context.Context, req models.NewSurprise) (*models.CreatedSurprise, error) {
	b.created = append(b.created, req)
	out := &models.CreatedSurprise{ID: fmt.Sprintf("srp-%d", len(b.created))}
	for i := range req.Photos {
		out.Uploads = append(out.Uploads, models.UploadTask{
			PhotoID:    fmt.Sprintf("%s-ph-%d", out.ID, i),
			OrderIndex: i,
			URL:        fmt.Sprintf("https://bucket/%s/%d", out.ID, i),
		})
	}
	return out, nil
}

func (b *stubBackend) MarkUploaded(context.Context, string, []string) error { return nil }

func (b *stubBackend) GetSurprise(ctx context.Context, id string) (*models.Surprise, error) {
	return &models.Surprise{ID: id, Status: "draft"}, nil
}

func (b *stubBackend) Put(context.Context, string, string, []byte) error { return nil }

type fakePending struct {
	ids []string
	err error
}

func (f fakePending) Pending(context.Context) ([]string, error) { return f.ids, f.err }

type fakeRunner struct {
	runs []handoff.Attempt
	ret  *handoff.Result
}

func (f *fakeRunner) Run(ctx context.Context, a handoff.Attempt) *handoff.Result {
	f.runs = append(f.runs, a)
	if f.ret != nil {
		return f.ret
	}
	return &handoff.Result{AttemptID: a.ID, State: handoff.StateDone}
}

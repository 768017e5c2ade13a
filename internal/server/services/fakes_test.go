package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/lovesurprise/internal/common"
	"github.com/dmitrijs2005/lovesurprise/internal/dbx"
	"github.com/dmitrijs2005/lovesurprise/internal/server/models"
	"github.com/dmitrijs2005/lovesurprise/internal/server/notifications"
	notificationsrepo "github.com/dmitrijs2005/lovesurprise/internal/server/repositories/notifications"
	refreshtokensrepo "github.com/dmitrijs2005/lovesurprise/internal/server/repositories/refreshtokens"
	surprisesrepo "github.com/dmitrijs2005/lovesurprise/internal/server/repositories/surprises"
	usersrepo "github.com/dmitrijs2005/lovesurprise/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// fastHash keeps bcrypt at its minimum cost for the duration of a test.
func fastHash(t *testing.T) {
	t.Helper()
	orig := hashPassword
	hashPassword = func(pw []byte) ([]byte, error) { return bcrypt.GenerateFromPassword(pw, bcrypt.MinCost) }
	t.Cleanup(func() { hashPassword = orig })
}

type fakeUsersRepo struct {
	createErr error
	byEmail   map[string]*models.User
	getErr    error
	updateErr error
	created   []*models.User
	updated   []models.User
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = "u-1"
	u.CreatedAt = time.Now()
	f.created = append(f.created, u)
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) Update(ctx context.Context, u *models.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, *u)
	return nil
}

type fakeRefreshRepo struct {
	findOut   *models.RefreshToken
	findErr   error
	delErr    error
	createErr error

	created []string
	expires []time.Time
	deleted []string
}

func (f *fakeRefreshRepo) Create(ctx context.Context, userID string, token string, expiresAt time.Time) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, token)
	f.expires = append(f.expires, expiresAt)
	return nil
}

func (f *fakeRefreshRepo) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeRefreshRepo) Delete(ctx context.Context, token string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, token)
	return nil
}

type fakeSurprisesRepo struct {
	byID      map[string]*models.Surprise
	photos    map[string][]*models.Photo
	createErr error
	photoErr  error
	getErr    error
	markErr   error
	statusErr error

	marked       []string
	statusCalls  []string
	nextPhotoSeq int
}

func newFakeSurprises() *fakeSurprisesRepo {
	return &fakeSurprisesRepo{byID: map[string]*models.Surprise{}, photos: map[string][]*models.Photo{}}
}

func (f *fakeSurprisesRepo) Create(ctx context.Context, s *models.Surprise) (*models.Surprise, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	s.ID = "s-1"
	s.Status = "draft"
	s.CreatedAt = time.Now()
	f.byID[s.ID] = s
	return s, nil
}

func (f *fakeSurprisesRepo) AddPhoto(ctx context.Context, p *models.Photo) (*models.Photo, error) {
	if f.photoErr != nil {
		return nil, f.photoErr
	}
	f.nextPhotoSeq++
	p.ID = fmt.Sprintf("p-%d", f.nextPhotoSeq)
	f.photos[p.SurpriseID] = append(f.photos[p.SurpriseID], p)
	return p, nil
}

func (f *fakeSurprisesRepo) GetByID(ctx context.Context, id string) (*models.Surprise, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	s, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSurprisesRepo) ListByUser(ctx context.Context, userID string) ([]*models.Surprise, error) {
	var out []*models.Surprise
	for _, s := range f.byID {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSurprisesRepo) UpdateStatus(ctx context.Context, id, from, to string, at time.Time) error {
	if f.statusErr != nil {
		return f.statusErr
	}
	f.statusCalls = append(f.statusCalls, from+"->"+to)
	f.byID[id].Status = to
	f.byID[id].ActivatedAt = &at
	return nil
}

func (f *fakeSurprisesRepo) MarkPhotosUploaded(ctx context.Context, surpriseID string, photoIDs []string) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.marked = append(f.marked, photoIDs...)
	return nil
}

func (f *fakeSurprisesRepo) Photos(ctx context.Context, surpriseID string) ([]*models.Photo, error) {
	return f.photos[surpriseID], nil
}

type fakeNotificationsRepo struct{}

func (fakeNotificationsRepo) Create(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	return n, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeRefreshRepo
	s *fakeSurprisesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error           { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository                 { return m.u }
func (m *fakeRepoManager) RefreshTokens(db dbx.DBTX) refreshtokensrepo.Repository { return m.r }
func (m *fakeRepoManager) Surprises(db dbx.DBTX) surprisesrepo.Repository         { return m.s }
func (m *fakeRepoManager) Notifications(db dbx.DBTX) notificationsrepo.Repository {
	return fakeNotificationsRepo{}
}

type fakeStore struct {
	mu      sync.Mutex
	putKeys []string
	putErr  error
	getErr  error
}

func (f *fakeStore) PresignPut(ctx context.Context, key string) (string, error) {
	if f.putErr != nil {
		return "", f.putErr
	}
	f.mu.Lock()
	f.putKeys = append(f.putKeys, key)
	f.mu.Unlock()
	return "https://put/" + key, nil
}

func (f *fakeStore) PresignGet(ctx context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	return "https://get/" + key, nil
}

type fakeNotifier struct {
	sent []notifications.ViewedPayload
	err  error
}

func (f *fakeNotifier) NotifyViewed(ctx context.Context, p notifications.ViewedPayload) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, p)
	return nil
}

var errNotifier = errors.New("queue down")

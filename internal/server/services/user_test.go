package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/lovesurprise/internal/common"
	"github.com/dmitrijs2005/lovesurprise/internal/server/auth"
	"github.com/dmitrijs2005/lovesurprise/internal/server/config"
	"github.com/dmitrijs2005/lovesurprise/internal/server/models"
)

func newUserService(t *testing.T, rm *fakeRepoManager) (*UserService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newSQLMockDB(t)
	cfg := &config.Config{
		SecretKey:                    "k",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
	}
	return NewUserService(db, rm, cfg), mock
}

func userWithPassword(t *testing.T, id, email, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{ID: id, Name: "Ana", Email: email, PasswordHash: hash}
}

func TestRegister_Success(t *testing.T) {
	fastHash(t)
	rm := &fakeRepoManager{u: &fakeUsersRepo{}, r: &fakeRefreshRepo{}}
	s, mock := newUserService(t, rm)
	mock.ExpectBegin()
	mock.ExpectCommit()

	u, pair, err := s.Register(context.Background(), "  Ana ", "ana@example.com", "segredo1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)
	assert.Equal(t, "Ana", u.Name)
	require.NoError(t, bcrypt.CompareHashAndPassword(u.PasswordHash, []byte("segredo1")))

	userID, err := auth.GetUserIDFromToken(pair.AccessToken, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
	assert.Equal(t, []string{pair.RefreshToken}, rm.r.created)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_Validation(t *testing.T) {
	rm := &fakeRepoManager{u: &fakeUsersRepo{}, r: &fakeRefreshRepo{}}
	s, _ := newUserService(t, rm)

	tests := []struct {
		name, userName, email, password string
	}{
		{name: "empty name", userName: " ", email: "a@b.c", password: "123456"},
		{name: "bad email", userName: "Ana", email: "not-an-email", password: "123456"},
		{name: "short password", userName: "Ana", email: "a@b.c", password: "12345"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := s.Register(context.Background(), tt.userName, tt.email, tt.password)
			assert.ErrorIs(t, err, common.ErrorValidation)
		})
	}
	assert.Empty(t, rm.u.created)
}

func TestRegister_DuplicateEmailRollsBack(t *testing.T) {
	fastHash(t)
	rm := &fakeRepoManager{u: &fakeUsersRepo{createErr: common.ErrorAlreadyExists}, r: &fakeRefreshRepo{}}
	s, mock := newUserService(t, rm)
	mock.ExpectBegin()
	mock.ExpectRollback()

	_, _, err := s.Register(context.Background(), "Ana", "ana@example.com", "segredo1")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_TokenStoreErrorRollsBack(t *testing.T) {
	fastHash(t)
	rm := &fakeRepoManager{u: &fakeUsersRepo{}, r: &fakeRefreshRepo{createErr: errBoom{}}}
	s, mock := newUserService(t, rm)
	mock.ExpectBegin()
	mock.ExpectRollback()

	_, _, err := s.Register(context.Background(), "Ana", "ana@example.com", "segredo1")
	assert.ErrorIs(t, err, common.ErrorInternal)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_Flows(t *testing.T) {
	ana := userWithPassword(t, "u-1", "ana@example.com", "right-pass")

	tests := []struct {
		name     string
		users    *fakeUsersRepo
		email    string
		password string
		wantErr  error
	}{
		{name: "unknown email", users: &fakeUsersRepo{}, email: "ghost@example.com", password: "x", wantErr: common.ErrorUnauthorized},
		{name: "repository failure", users: &fakeUsersRepo{getErr: errBoom{}}, email: "ana@example.com", password: "x", wantErr: common.ErrorInternal},
		{name: "wrong password", users: &fakeUsersRepo{byEmail: map[string]*models.User{"ana@example.com": ana}}, email: "ana@example.com", password: "wrong-pass", wantErr: common.ErrorUnauthorized},
		{name: "success", users: &fakeUsersRepo{byEmail: map[string]*models.User{"ana@example.com": ana}}, email: " ana@example.com ", password: "right-pass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := &fakeRepoManager{u: tt.users, r: &fakeRefreshRepo{}}
			s, _ := newUserService(t, rm)

			u, pair, err := s.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, pair)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u-1", u.ID)
			assert.NotEmpty(t, pair.AccessToken)
			assert.Len(t, pair.RefreshToken, 64)
		})
	}
}

func TestRefreshToken_Success(t *testing.T) {
	rm := &fakeRepoManager{r: &fakeRefreshRepo{
		findOut: &models.RefreshToken{UserID: "u1", Expires: time.Now().Add(10 * time.Minute)},
	}}
	s, mock := newUserService(t, rm)
	mock.ExpectBegin()
	mock.ExpectCommit()

	fixed := time.Date(2025, 2, 14, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }
	rm.r.findOut.Expires = fixed.Add(time.Minute)

	pair, err := s.RefreshToken(context.Background(), "refresh-xyz")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.Equal(t, []string{"refresh-xyz"}, rm.r.deleted)
	require.Len(t, rm.r.expires, 1)
	assert.Equal(t, fixed.Add(2*time.Hour), rm.r.expires[0])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshToken_Expired(t *testing.T) {
	rm := &fakeRepoManager{r: &fakeRefreshRepo{
		findOut: &models.RefreshToken{UserID: "u1", Expires: time.Now().Add(-1 * time.Minute)},
	}}
	s, _ := newUserService(t, rm)

	_, err := s.RefreshToken(context.Background(), "r")
	assert.ErrorIs(t, err, common.ErrRefreshTokenExpired)
}

func TestRefreshToken_FindErr(t *testing.T) {
	rm := &fakeRepoManager{r: &fakeRefreshRepo{findErr: common.ErrorNotFound}}
	s, _ := newUserService(t, rm)

	_, err := s.RefreshToken(context.Background(), "r")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	if err == nil || !regexp.MustCompile(`error searching refresh token: `).MatchString(err.Error()) {
		t.Fatalf("expected wrapped find error, got %v", err)
	}
}

func TestRefreshToken_DeleteErr(t *testing.T) {
	rm := &fakeRepoManager{r: &fakeRefreshRepo{
		findOut: &models.RefreshToken{UserID: "u1", Expires: time.Now().Add(10 * time.Minute)},
		delErr:  errBoom{},
	}}
	s, mock := newUserService(t, rm)
	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := s.RefreshToken(context.Background(), "r")
	if err == nil || !regexp.MustCompile(`error deleting refresh token: .*boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped delete error, got %v", err)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLogout(t *testing.T) {
	rm := &fakeRepoManager{r: &fakeRefreshRepo{}}
	s, _ := newUserService(t, rm)

	require.NoError(t, s.Logout(context.Background(), ""))
	require.NoError(t, s.Logout(context.Background(), "tok"))
	assert.Equal(t, []string{"tok"}, rm.r.deleted)

	rm.r.delErr = errors.New("db down")
	assert.Error(t, s.Logout(context.Background(), "tok"))
}

func TestSession(t *testing.T) {
	ana := &models.User{ID: "u-1", Name: "Ana", Email: "ana@example.com"}
	rm := &fakeRepoManager{u: &fakeUsersRepo{byEmail: map[string]*models.User{ana.Email: ana}}}
	s, _ := newUserService(t, rm)

	got, err := s.Session(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, ana, got)

	_, err = s.Session(context.Background(), "u-404")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdateProfile(t *testing.T) {
	newSvc := func(t *testing.T) (*UserService, *fakeUsersRepo) {
		fastHash(t)
		ana := userWithPassword(t, "u-1", "ana@example.com", "segredo1")
		users := &fakeUsersRepo{byEmail: map[string]*models.User{ana.Email: ana}}
		s, _ := newUserService(t, &fakeRepoManager{u: users})
		return s, users
	}

	t.Run("NameAndPassword", func(t *testing.T) {
		s, users := newSvc(t)

		got, err := s.UpdateProfile(context.Background(), "u-1", "segredo1", "  Ana B. ", "novasenha")
		require.NoError(t, err)
		assert.Equal(t, "Ana B.", got.Name)
		assert.Equal(t, "ana@example.com", got.Email)
		require.Len(t, users.updated, 1)
		assert.Equal(t, "Ana B.", users.updated[0].Name)
		require.NoError(t, bcrypt.CompareHashAndPassword(users.updated[0].PasswordHash, []byte("novasenha")))
	})

	t.Run("NameOnlyKeepsPassword", func(t *testing.T) {
		s, users := newSvc(t)

		_, err := s.UpdateProfile(context.Background(), "u-1", "segredo1", "Bruna", "")
		require.NoError(t, err)
		require.Len(t, users.updated, 1)
		require.NoError(t, bcrypt.CompareHashAndPassword(users.updated[0].PasswordHash, []byte("segredo1")))
	})

	t.Run("WrongCurrentPassword", func(t *testing.T) {
		s, users := newSvc(t)

		_, err := s.UpdateProfile(context.Background(), "u-1", "wrong-one", "Bruna", "novasenha")
		require.ErrorIs(t, err, common.ErrorForbidden)
		assert.Empty(t, users.updated)
	})

	t.Run("NoChanges", func(t *testing.T) {
		s, users := newSvc(t)

		for _, name := range []string{"", "  ", "Ana", " Ana "} {
			_, err := s.UpdateProfile(context.Background(), "u-1", "segredo1", name, "")
			require.ErrorIs(t, err, common.ErrorValidation, "name %q", name)
			assert.ErrorContains(t, err, "no changes")
		}
		assert.Empty(t, users.updated)
	})

	t.Run("ShortNewPassword", func(t *testing.T) {
		s, users := newSvc(t)

		_, err := s.UpdateProfile(context.Background(), "u-1", "segredo1", "", "abc")
		require.ErrorIs(t, err, common.ErrorValidation)
		assert.Empty(t, users.updated)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		s, _ := newSvc(t)

		_, err := s.UpdateProfile(context.Background(), "u-404", "segredo1", "Bruna", "")
		require.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("RepoError", func(t *testing.T) {
		s, users := newSvc(t)
		users.updateErr = errBoom{}

		_, err := s.UpdateProfile(context.Background(), "u-1", "segredo1", "Bruna", "")
		require.ErrorIs(t, err, errBoom{})
	})
}

package drafts

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/lovesurprise/internal/client/models"
)

// memKV is an in-memory metadata.Repository.
type memKV struct {
	m      map[string]string
	getErr error
}

func newMemKV() *memKV { return &memKV{m: map[string]string{}} }

func (k *memKV) Get(_ context.Context, key string) (string, bool, error) {
	if k.getErr != nil {
		return "", false, k.getErr
	}
	v, ok := k.m[key]
	return v, ok, nil
}
func (k *memKV) Set(_ context.Context, key, value string) error { k.m[key] = value; return nil }
func (k *memKV) Delete(_ context.Context, key string) error     { delete(k.m, key); return nil }
func (k *memKV) Clear(context.Context) error                    { k.m = map[string]string{}; return nil }
func (k *memKV) List(_ context.Context, prefix string) (map[string]string, error) {
	out := map[string]string{}
	for key, v := range k.m {
		if strings.HasPrefix(key, prefix) {
			out[key] = v
		}
	}
	return out, nil
}

func sampleDraft(created time.Time) models.Draft {
	return models.Draft{
		CoupleName: "Ana & Bruno",
		StartDate:  "2023-01-01",
		Message:    "...",
		PlanID:     "basic",
		FileIDs:    []string{"file_1_aaaaaaaaa", "file_1_bbbbbbbbb"},
		Status:     "draft",
		CreatedAt:  created,
	}
}

func TestStore_SaveLoadDelete(t *testing.T) {
	kv := newMemKV()
	s := NewStore(kv)
	ctx := context.Background()
	d := sampleDraft(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, s.Save(ctx, "att-1", d))
	assert.Contains(t, kv.m, "draft:att-1")

	got, err := s.Load(ctx, "att-1")
	require.NoError(t, err)
	assert.Equal(t, d.FileIDs, got.FileIDs)
	assert.Equal(t, d.CoupleName, got.CoupleName)
	assert.True(t, d.CreatedAt.Equal(got.CreatedAt))

	require.NoError(t, s.Delete(ctx, "att-1"))
	_, err = s.Load(ctx, "att-1")
	require.ErrorIs(t, err, ErrSlotEmpty)
}

func TestStore_AttemptsAreIsolated(t *testing.T) {
	s := NewStore(newMemKV())
	ctx := context.Background()

	a := sampleDraft(time.Now())
	b := sampleDraft(time.Now())
	b.CoupleName = "Carla & Dino"

	require.NoError(t, s.Save(ctx, "a", a))
	require.NoError(t, s.Save(ctx, "b", b))
	require.NoError(t, s.Delete(ctx, "a"))

	got, err := s.Load(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "Carla & Dino", got.CoupleName)
}

func TestStore_SaveRejectsEmptyAttempt(t *testing.T) {
	s := NewStore(newMemKV())
	require.Error(t, s.Save(context.Background(), "", sampleDraft(time.Now())))
}

func TestStore_LoadCorruptSlot(t *testing.T) {
	kv := newMemKV()
	kv.m["draft:x"] = "{not json"
	_, err := NewStore(kv).Load(context.Background(), "x")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrSlotEmpty))
}

func TestStore_LoadPropagatesStoreError(t *testing.T) {
	kv := newMemKV()
	kv.getErr = errors.New("disk gone")
	_, err := NewStore(kv).Load(context.Background(), "x")
	require.EqualError(t, err, "disk gone")
}

func TestStore_PendingOldestFirst(t *testing.T) {
	kv := newMemKV()
	s := NewStore(kv)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, s.Save(ctx, "newer", sampleDraft(base.Add(time.Hour))))
	require.NoError(t, s.Save(ctx, "older", sampleDraft(base)))
	kv.m["draft:broken"] = "nope"
	kv.m["payment:last"] = "id"

	ids, err := s.Pending(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"older", "newer"}, ids)
}

func TestNewAttemptID_Unique(t *testing.T) {
	assert.NotEqual(t, NewAttemptID(), NewAttemptID())
}

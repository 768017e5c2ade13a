// Package drafts keeps surprise drafts in attempt-scoped local slots.
//
// Each registration attempt owns the slot "draft:<attempt-id>". The slot
// lists the staged photo ids of that attempt only; a finished or discarded
// attempt removes its own photos and leaves other slots' photos staged.
package drafts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/lovesurprise/internal/client/models"
	"github.com/dmitrijs2005/lovesurprise/internal/client/repositories/metadata"
)

const slotPrefix = "draft:"

var ErrSlotEmpty = errors.New("draft slot is empty")

// Store reads and writes draft slots on top of the local key/value store.
type Store struct {
	kv metadata.Repository
}

func NewStore(kv metadata.Repository) *Store {
	return &Store{kv: kv}
}

// NewAttemptID returns a fresh attempt identifier.
func NewAttemptID() string {
	return uuid.NewString()
}

func slotKey(attemptID string) string {
	return slotPrefix + attemptID
}

func (s *Store) Save(ctx context.Context, attemptID string, d models.Draft) error {
	if attemptID == "" {
		return errors.New("empty attempt id")
	}
	b, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	return s.kv.Set(ctx, slotKey(attemptID), string(b))
}

// Load returns the draft of an attempt, or ErrSlotEmpty.
func (s *Store) Load(ctx context.Context, attemptID string) (*models.Draft, error) {
	v, ok, err := s.kv.Get(ctx, slotKey(attemptID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrSlotEmpty
	}
	d := &models.Draft{}
	if err := json.Unmarshal([]byte(v), d); err != nil {
		return nil, fmt.Errorf("decode draft %s: %w", attemptID, err)
	}
	return d, nil
}

func (s *Store) Delete(ctx context.Context, attemptID string) error {
	return s.kv.Delete(ctx, slotKey(attemptID))
}

// Pending lists attempts that still hold a draft, oldest first. Slots that
// do not decode are skipped.
func (s *Store) Pending(ctx context.Context) ([]string, error) {
	slots, err := s.kv.List(ctx, slotPrefix)
	if err != nil {
		return nil, err
	}

	type pending struct {
		id    string
		draft models.Draft
	}
	list := make([]pending, 0, len(slots))
	for k, v := range slots {
		var d models.Draft
		if err := json.Unmarshal([]byte(v), &d); err != nil {
			continue
		}
		list = append(list, pending{id: strings.TrimPrefix(k, slotPrefix), draft: d})
	}

	sort.Slice(list, func(i, j int) bool {
		if !list[i].draft.CreatedAt.Equal(list[j].draft.CreatedAt) {
			return list[i].draft.CreatedAt.Before(list[j].draft.CreatedAt)
		}
		return list[i].id < list[j].id
	})

	ids := make([]string, len(list))
	for i, p := range list {
		ids[i] = p.id
	}
	return ids, nil
}

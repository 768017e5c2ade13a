package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/multierr"

	"github.com/dmitrijs2005/lovesurprise/internal/client/drafts"
	"github.com/dmitrijs2005/lovesurprise/internal/client/models"
	"github.com/dmitrijs2005/lovesurprise/internal/client/repositories/staging"
	"github.com/dmitrijs2005/lovesurprise/internal/filex"
	"github.com/dmitrijs2005/lovesurprise/internal/surprise"
)

var readUpload = filex.ReadUpload

// DraftInput is what the user fills in before signing up.
type DraftInput struct {
	surprise.Content
	PhotoPaths []string
}

type DraftService interface {
	// Create validates the input, stages the photos and stores the draft
	// in a slot of its own. It returns the attempt id owning the slot.
	Create(ctx context.Context, in DraftInput) (string, error)
	Get(ctx context.Context, attemptID string) (*models.Draft, error)
	Pending(ctx context.Context) ([]string, error)
	Discard(ctx context.Context, attemptID string) error
}

type draftSlots interface {
	Save(ctx context.Context, attemptID string, d models.Draft) error
	Load(ctx context.Context, attemptID string) (*models.Draft, error)
	Delete(ctx context.Context, attemptID string) error
	Pending(ctx context.Context) ([]string, error)
}

type draftService struct {
	files staging.Repository
	slots draftSlots
	now   func() time.Time
	newID func() string
}

func NewDraftService(files staging.Repository, slots draftSlots) DraftService {
	return &draftService{files: files, slots: slots, now: time.Now, newID: drafts.NewAttemptID}
}

func (s *draftService) Create(ctx context.Context, in DraftInput) (string, error) {
	in.CoupleName = strings.TrimSpace(in.CoupleName)
	in.YoutubeLink = strings.TrimSpace(in.YoutubeLink)

	if err := surprise.Validate(in.Content, len(in.PhotoPaths)); err != nil {
		return "", err
	}

	photos := make([]models.FileData, 0, len(in.PhotoPaths))
	for _, p := range in.PhotoPaths {
		name, ct, content, err := readUpload(p)
		if err != nil {
			return "", err
		}
		if !strings.HasPrefix(ct, "image/") {
			return "", fmt.Errorf("%w: %s is not an image (%s)", surprise.ErrInvalidDraft, name, ct)
		}
		photos = append(photos, models.FileData{Name: name, ContentType: ct, Content: content})
	}

	ids, err := s.files.Save(ctx, photos)
	if err != nil {
		return "", err
	}

	attemptID := s.newID()
	d := models.Draft{
		CoupleName:  in.CoupleName,
		StartDate:   in.StartDate,
		Message:     in.Message,
		YoutubeLink: in.YoutubeLink,
		PlanID:      in.PlanID,
		FileIDs:     ids,
		Status:      string(surprise.StatusDraft),
		CreatedAt:   s.now(),
	}
	if err := s.slots.Save(ctx, attemptID, d); err != nil {
		return "", multierr.Append(fmt.Errorf("save draft: %w", err), s.files.Delete(ctx, ids))
	}

	return attemptID, nil
}

func (s *draftService) Get(ctx context.Context, attemptID string) (*models.Draft, error) {
	return s.slots.Load(ctx, attemptID)
}

func (s *draftService) Pending(ctx context.Context) ([]string, error) {
	return s.slots.Pending(ctx)
}

// Discard drops the slot and the photos staged for it.
func (s *draftService) Discard(ctx context.Context, attemptID string) error {
	d, err := s.slots.Load(ctx, attemptID)
	if err != nil {
		return err
	}
	if err := s.slots.Delete(ctx, attemptID); err != nil {
		return err
	}
	return s.files.Delete(ctx, d.FileIDs)
}

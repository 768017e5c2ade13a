package handoff

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/multierr"

	"github.com/dmitrijs2005/lovesurprise/internal/client/models"
	"github.com/dmitrijs2005/lovesurprise/internal/client/repositories/staging"
	"github.com/dmitrijs2005/lovesurprise/internal/logging"
)

// Attempt is the context object of one registration attempt. Its ID names
// the draft slot the run consumes.
type Attempt struct {
	ID        string
	StartedAt time.Time
}

// Result describes how a run ended.
type Result struct {
	AttemptID string
	// State is StateDone or StateFailed.
	State State
	// Stage is the last stage entered; for a failed run, the one that failed.
	Stage State
	// Path lists every state entered, in order.
	Path       []State
	SurpriseID string
	// Target is where the user goes next.
	Target string
	Err    error
}

func (r *Result) enter(s State) {
	r.Stage = s
	r.Path = append(r.Path, s)
}

type Backend interface {
	CreateSurprise(ctx context.Context, req models.NewSurprise) (*models.CreatedSurprise, error)
	MarkUploaded(ctx context.Context, surpriseID string, photoIDs []string) error
	GetSurprise(ctx context.Context, id string) (*models.Surprise, error)
}

type DraftSlots interface {
	Load(ctx context.Context, attemptID string) (*models.Draft, error)
	Delete(ctx context.Context, attemptID string) error
}

type Uploader interface {
	Put(ctx context.Context, url string, contentType string, body []byte) error
}

type Paths struct {
	Payment string
	Draft   string
}

type Sequencer struct {
	waiter   SessionWaiter
	drafts   DraftSlots
	files    staging.Repository
	backend  Backend
	uploader Uploader
	paths    Paths
	log      logging.Logger
}

func NewSequencer(
	waiter SessionWaiter,
	drafts DraftSlots,
	files staging.Repository,
	backend Backend,
	uploader Uploader,
	paths Paths,
	log logging.Logger,
) *Sequencer {
	return &Sequencer{
		waiter:   waiter,
		drafts:   drafts,
		files:    files,
		backend:  backend,
		uploader: uploader,
		paths:    paths,
		log:      log,
	}
}

// Run executes one handoff for the attempt. It never returns nil and never
// panics on backend or storage errors; failures are reported in the Result.
func (s *Sequencer) Run(ctx context.Context, a Attempt) *Result {
	r := &Result{AttemptID: a.ID}
	log := s.log.With("attempt_id", a.ID)

	r.enter(StateStart)

	r.enter(StateAwaitingSession)
	log.Info(ctx, "handoff stage", "stage", r.Stage)
	sess, err := s.waiter.Wait(ctx)
	if err != nil {
		return s.fail(ctx, log, r, fmt.Errorf("%w: %w", ErrSessionNotEstablished, err))
	}
	log.Info(ctx, "session established", "user_id", sess.UserID)

	r.enter(StateResolvingFiles)
	draft, files, err := s.resolve(ctx, a.ID)
	if err != nil {
		return s.fail(ctx, log, r, err)
	}
	log.Info(ctx, "handoff stage", "stage", r.Stage, "file_ids", draft.FileIDs)

	r.enter(StateSubmitting)
	id, err := s.submit(ctx, log, draft, files)
	r.SurpriseID = id
	if err != nil {
		return s.fail(ctx, log, r, err)
	}
	log.Info(ctx, "handoff stage", "stage", r.Stage, "surprise_id", id)

	r.enter(StateVerifying)
	if err := s.verify(ctx, id); err != nil {
		return s.fail(ctx, log, r, err)
	}

	r.enter(StateCleanup)
	if err := multierr.Combine(s.drafts.Delete(ctx, a.ID), s.files.Delete(ctx, draft.FileIDs)); err != nil {
		for _, e := range multierr.Errors(err) {
			log.Warn(ctx, "handoff cleanup incomplete", "surprise_id", id, "error", e)
		}
	}

	r.enter(StateDone)
	r.State = StateDone
	r.Target = s.paymentTarget(id)
	log.Info(ctx, "handoff done", "surprise_id", id, "target", r.Target)
	return r
}

func (s *Sequencer) fail(ctx context.Context, log logging.Logger, r *Result, err error) *Result {
	r.Path = append(r.Path, StateFailed)
	r.State = StateFailed
	r.Err = err
	r.Target = s.paths.Draft
	log.Error(ctx, "handoff failed", "stage", r.Stage, "surprise_id", r.SurpriseID, "error", err)
	return r
}

func (s *Sequencer) resolve(ctx context.Context, attemptID string) (*models.Draft, []*models.StagedFile, error) {
	draft, err := s.drafts.Load(ctx, attemptID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: load draft: %w", ErrFileResolution, err)
	}

	files, err := s.files.Get(ctx, draft.FileIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrFileResolution, err)
	}

	var missing []string
	for i, f := range files {
		if f == nil {
			missing = append(missing, draft.FileIDs[i])
		}
	}
	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("%w: missing staged files %s", ErrFileResolution, strings.Join(missing, ", "))
	}

	return draft, files, nil
}

// submit creates the record, uploads every file to its presigned URL and
// confirms the uploads. The returned id is set as soon as the record exists.
func (s *Sequencer) submit(ctx context.Context, log logging.Logger, d *models.Draft, files []*models.StagedFile) (string, error) {
	req := models.NewSurprise{
		CoupleName:  d.CoupleName,
		StartDate:   d.StartDate,
		Message:     d.Message,
		YoutubeLink: d.YoutubeLink,
		PlanID:      d.PlanID,
		Photos:      make([]models.PhotoMeta, len(files)),
	}
	for i, f := range files {
		req.Photos[i] = models.PhotoMeta{Name: f.Name, ContentType: f.ContentType, Size: int64(len(f.Content))}
	}

	created, err := s.backend.CreateSurprise(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: create: %w", ErrSubmission, err)
	}
	if len(created.Uploads) != len(files) {
		return created.ID, fmt.Errorf("%w: expected %d upload targets, got %d", ErrSubmission, len(files), len(created.Uploads))
	}

	photoIDs := make([]string, 0, len(created.Uploads))
	for _, u := range created.Uploads {
		if u.OrderIndex < 0 || u.OrderIndex >= len(files) {
			return created.ID, fmt.Errorf("%w: upload target index %d out of range", ErrSubmission, u.OrderIndex)
		}
		f := files[u.OrderIndex]
		if err := s.uploader.Put(ctx, u.URL, f.ContentType, f.Content); err != nil {
			return created.ID, fmt.Errorf("%w: upload %s: %w", ErrSubmission, f.ID, err)
		}
		log.Debug(ctx, "photo uploaded", "file_id", f.ID, "photo_id", u.PhotoID)
		photoIDs = append(photoIDs, u.PhotoID)
	}

	if err := s.backend.MarkUploaded(ctx, created.ID, photoIDs); err != nil {
		return created.ID, fmt.Errorf("%w: mark uploaded: %w", ErrSubmission, err)
	}

	return created.ID, nil
}

func (s *Sequencer) verify(ctx context.Context, id string) error {
	got, err := s.backend.GetSurprise(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: read back %s: %w", ErrVerification, id, err)
	}
	if got == nil || got.ID != id {
		return fmt.Errorf("%w: read back %s returned a different record", ErrVerification, id)
	}
	return nil
}

func (s *Sequencer) paymentTarget(id string) string {
	return s.paths.Payment + "?" + url.Values{"surprise_id": {id}}.Encode()
}

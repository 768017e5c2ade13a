package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/lovesurprise/internal/common"
	"github.com/dmitrijs2005/lovesurprise/internal/dbx"
	"github.com/dmitrijs2005/lovesurprise/internal/logging"
	"github.com/dmitrijs2005/lovesurprise/internal/server/models"
	"github.com/dmitrijs2005/lovesurprise/internal/server/notifications"
	"github.com/dmitrijs2005/lovesurprise/internal/server/photostore"
	"github.com/dmitrijs2005/lovesurprise/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/lovesurprise/internal/surprise"
)

// presignConcurrency bounds the number of signing goroutines per request.
const presignConcurrency = 4

// Notifier publishes "surprise viewed" events.
type Notifier interface {
	NotifyViewed(ctx context.Context, p notifications.ViewedPayload) error
}

type PhotoInput struct {
	Name        string
	ContentType string
	Size        int64
}

type CreateSurpriseInput struct {
	surprise.Content
	Photos []PhotoInput
}

// SurpriseDetails is a surprise together with presigned GET URLs of its
// uploaded photos, in display order.
type SurpriseDetails struct {
	*models.Surprise
	PhotoURLs []string
}

type SurpriseService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       photostore.Store
	notifier    Notifier
	log         logging.Logger
	now         func() time.Time
}

func NewSurpriseService(db *sql.DB, m repomanager.RepositoryManager, store photostore.Store, notifier Notifier, log logging.Logger) *SurpriseService {
	return &SurpriseService{
		db:          db,
		repomanager: m,
		store:       store,
		notifier:    notifier,
		log:         log,
		now:         time.Now,
	}
}

// Create stores a draft surprise with one row per announced photo and
// returns an upload task per photo. Rows and URLs are produced inside one
// transaction, so a signing failure leaves nothing behind.
func (s *SurpriseService) Create(ctx context.Context, userID string, in CreateSurpriseInput) (*models.Surprise, []*models.PhotoUploadTask, error) {
	in.CoupleName = strings.TrimSpace(in.CoupleName)
	in.YoutubeLink = strings.TrimSpace(in.YoutubeLink)
	if err := surprise.Validate(in.Content, len(in.Photos)); err != nil {
		return nil, nil, err
	}
	for i, p := range in.Photos {
		if !strings.HasPrefix(p.ContentType, "image/") {
			return nil, nil, fmt.Errorf("%w: photo %d is not an image (%s)", surprise.ErrInvalidDraft, i+1, p.ContentType)
		}
	}

	var (
		created *models.Surprise
		tasks   []*models.PhotoUploadTask
	)
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Surprises(tx)

		sp, err := repo.Create(ctx, &models.Surprise{
			UserID:      userID,
			CoupleName:  in.CoupleName,
			StartDate:   in.StartDate,
			Message:     in.Message,
			YoutubeLink: in.YoutubeLink,
			PlanID:      in.PlanID,
		})
		if err != nil {
			return fmt.Errorf("error creating surprise: %w", err)
		}

		now := s.now()
		for i, p := range in.Photos {
			photo, err := repo.AddPhoto(ctx, &models.Photo{
				SurpriseID:  sp.ID,
				StorageKey:  photostore.NewKey(sp.ID, now),
				ContentType: p.ContentType,
				Size:        p.Size,
				OrderIndex:  i,
			})
			if err != nil {
				return fmt.Errorf("error adding photo %d: %w", i, err)
			}
			sp.Photos = append(sp.Photos, photo)
		}

		tasks, err = s.presignUploads(ctx, sp.Photos)
		if err != nil {
			return err
		}
		created = sp
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.log.Info(ctx, "surprise created", "surprise_id", created.ID, "user_id", userID, "photos", len(tasks))
	return created, tasks, nil
}

func (s *SurpriseService) presignUploads(ctx context.Context, photos []*models.Photo) ([]*models.PhotoUploadTask, error) {
	tasks := make([]*models.PhotoUploadTask, len(photos))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(presignConcurrency)
	for i, p := range photos {
		i, p := i, p
		g.Go(func() error {
			u, err := s.store.PresignPut(gctx, p.StorageKey)
			if err != nil {
				return err
			}
			tasks[i] = &models.PhotoUploadTask{PhotoID: p.ID, OrderIndex: p.OrderIndex, URL: u}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: presign: %w", common.ErrorInternal, err)
	}
	return tasks, nil
}

func (s *SurpriseService) presignDownloads(ctx context.Context, photos []*models.Photo) ([]string, error) {
	var uploaded []*models.Photo
	for _, p := range photos {
		if p.Uploaded {
			uploaded = append(uploaded, p)
		}
	}

	urls := make([]string, len(uploaded))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(presignConcurrency)
	for i, p := range uploaded {
		i, p := i, p
		g.Go(func() error {
			u, err := s.store.PresignGet(gctx, p.StorageKey)
			if err != nil {
				return err
			}
			urls[i] = u
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: presign: %w", common.ErrorInternal, err)
	}
	return urls, nil
}

// owned loads a surprise of userID. Surprises of other users look absent.
func (s *SurpriseService) owned(ctx context.Context, userID, id string) (*models.Surprise, error) {
	sp, err := s.repomanager.Surprises(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sp.UserID != userID {
		return nil, common.ErrorNotFound
	}
	return sp, nil
}

// MarkUploaded records that the client finished uploading photoIDs.
func (s *SurpriseService) MarkUploaded(ctx context.Context, userID, id string, photoIDs []string) error {
	if len(photoIDs) == 0 {
		return fmt.Errorf("%w: no photo ids", common.ErrorValidation)
	}
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Surprises(tx).MarkPhotosUploaded(ctx, id, photoIDs)
	})
}

// Get returns one surprise of userID with photo URLs.
func (s *SurpriseService) Get(ctx context.Context, userID, id string) (*SurpriseDetails, error) {
	sp, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, sp)
}

func (s *SurpriseService) details(ctx context.Context, sp *models.Surprise) (*SurpriseDetails, error) {
	photos, err := s.repomanager.Surprises(s.db).Photos(ctx, sp.ID)
	if err != nil {
		return nil, err
	}
	sp.Photos = photos

	urls, err := s.presignDownloads(ctx, photos)
	if err != nil {
		return nil, err
	}
	return &SurpriseDetails{Surprise: sp, PhotoURLs: urls}, nil
}

// List returns the surprises of userID, newest first, without photos.
func (s *SurpriseService) List(ctx context.Context, userID string) ([]*models.Surprise, error) {
	return s.repomanager.Surprises(s.db).ListByUser(ctx, userID)
}

// UpdateStatus applies a status change requested by the owner. Only
// draft -> active is accepted.
func (s *SurpriseService) UpdateStatus(ctx context.Context, userID, id, status string) error {
	to, err := surprise.ParseStatus(status)
	if err != nil {
		return err
	}
	sp, err := s.owned(ctx, userID, id)
	if err != nil {
		return err
	}
	if !surprise.CanTransition(surprise.Status(sp.Status), to) {
		return fmt.Errorf("%w: %s -> %s", common.ErrInvalidStatus, sp.Status, to)
	}
	if err := s.repomanager.Surprises(s.db).UpdateStatus(ctx, id, sp.Status, string(to), s.now()); err != nil {
		return err
	}
	s.log.Info(ctx, "surprise status changed", "surprise_id", id, "from", sp.Status, "to", to)
	return nil
}

// View serves the public page of an active surprise and notifies its
// owner. A failed notification does not fail the view.
func (s *SurpriseService) View(ctx context.Context, id string) (*SurpriseDetails, error) {
	sp, err := s.repomanager.Surprises(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sp.Status != string(surprise.StatusActive) {
		return nil, common.ErrorNotFound
	}

	plan, err := surprise.LookupPlan(sp.PlanID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	since := sp.CreatedAt
	if sp.ActivatedAt != nil {
		since = *sp.ActivatedAt
	}
	if !plan.AccessibleAt(since, s.now()) {
		return nil, surprise.ErrExpired
	}

	d, err := s.details(ctx, sp)
	if err != nil {
		return nil, err
	}

	if err := s.notifier.NotifyViewed(ctx, notifications.ViewedPayload{
		UserID:     sp.UserID,
		SurpriseID: sp.ID,
		CoupleName: sp.CoupleName,
	}); err != nil {
		s.log.Warn(ctx, "view notification failed", "surprise_id", sp.ID, "error", err)
	}
	return d, nil
}

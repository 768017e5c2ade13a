package handoff

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/lovesurprise/internal/client/client"
	"github.com/dmitrijs2005/lovesurprise/internal/client/drafts"
	"github.com/dmitrijs2005/lovesurprise/internal/client/models"
	"github.com/dmitrijs2005/lovesurprise/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/lovesurprise/internal/client/repositories/staging"
	"github.com/dmitrijs2005/lovesurprise/internal/logging"
)

type fakeSessions struct {
	mu        sync.Mutex
	calls     int
	readyFrom int // first call number that succeeds; 0 = never
}

func (f *fakeSessions) Session(ctx context.Context) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.readyFrom > 0 && f.calls >= f.readyFrom {
		return &models.Session{UserID: "user-1", Email: "ana@example.com"}, nil
	}
	return nil, client.ErrUnauthorized
}

type fakeBackend struct {
	createCalls int
	lastCreate  models.NewSurprise
	createErr   error
	uploads     []models.UploadTask // overrides generated targets when set

	markedID  string
	marked    []string
	markErr   error
	getErr    error
	getID     string // overrides the id returned by GetSurprise
	getCalled int
}

func (b *fakeBackend) CreateSurprise(ctx context.Context, req models.NewSurprise) (*models.CreatedSurprise, error) {
	b.createCalls++
	b.lastCreate = req
	if b.createErr != nil {
		return nil, b.createErr
	}
	out := &models.CreatedSurprise{ID: "srp-42"}
	if b.uploads != nil {
		out.Uploads = b.uploads
		return out, nil
	}
	for i := range req.Photos {
		out.Uploads = append(out.Uploads, models.UploadTask{
			PhotoID:    fmt.Sprintf("ph-%d", i),
			OrderIndex: i,
			URL:        fmt.Sprintf("https://bucket/srp-42/%d", i),
		})
	}
	return out, nil
}

func (b *fakeBackend) MarkUploaded(ctx context.Context, surpriseID string, photoIDs []string) error {
	b.markedID = surpriseID
	b.marked = photoIDs
	return b.markErr
}

func (b *fakeBackend) GetSurprise(ctx context.Context, id string) (*models.Surprise, error) {
	b.getCalled++
	if b.getErr != nil {
		return nil, b.getErr
	}
	if b.getID != "" {
		id = b.getID
	}
	return &models.Surprise{ID: id, Status: "draft"}, nil
}

type put struct {
	url         string
	contentType string
	body        string
}

type fakeUploader struct {
	puts []put
	err  error
}

func (u *fakeUploader) Put(ctx context.Context, url, contentType string, body []byte) error {
	if u.err != nil {
		return u.err
	}
	u.puts = append(u.puts, put{url: url, contentType: contentType, body: string(body)})
	return nil
}

// failingDeletes wraps a draft store and fails Delete.
type failingDeletes struct {
	*drafts.Store
}

func (failingDeletes) Delete(context.Context, string) error {
	return fmt.Errorf("metadata is read-only")
}

type logRecord struct {
	level string
	msg   string
}

type recLogger struct {
	mu      *sync.Mutex
	records *[]logRecord
}

func newRecLogger() recLogger {
	return recLogger{mu: &sync.Mutex{}, records: &[]logRecord{}}
}

func (l recLogger) add(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.records = append(*l.records, logRecord{level, msg})
}
func (l recLogger) Debug(_ context.Context, msg string, _ ...any) { l.add("debug", msg) }
func (l recLogger) Info(_ context.Context, msg string, _ ...any)  { l.add("info", msg) }
func (l recLogger) Warn(_ context.Context, msg string, _ ...any)  { l.add("warn", msg) }
func (l recLogger) Error(_ context.Context, msg string, _ ...any) { l.add("error", msg) }
func (l recLogger) With(...any) logging.Logger                    { return l }

func (l recLogger) has(level, msg string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, r := range *l.records {
		if r.level == level && r.msg == msg {
			return true
		}
	}
	return false
}

type env struct {
	db       *sql.DB
	files    *staging.SQLiteRepository
	drafts   *drafts.Store
	sessions *fakeSessions
	backend  *fakeBackend
	uploader *fakeUploader
	log      recLogger
	attempt  Attempt
	fileIDs  []string
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()

	db, err := client.InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	e := &env{
		db:       db,
		files:    staging.NewSQLiteRepository(db),
		drafts:   drafts.NewStore(metadata.NewSQLiteRepository(db)),
		sessions: &fakeSessions{readyFrom: 1},
		backend:  &fakeBackend{},
		uploader: &fakeUploader{},
		log:      newRecLogger(),
		attempt:  Attempt{ID: "att-1", StartedAt: time.Now()},
	}

	ids, err := e.files.Save(ctx, []models.FileData{
		{Name: "first.jpg", ContentType: "image/jpeg", Content: []byte("one")},
		{Name: "second.png", ContentType: "image/png", Content: []byte("two")},
	})
	require.NoError(t, err)
	e.fileIDs = ids

	require.NoError(t, e.drafts.Save(ctx, e.attempt.ID, models.Draft{
		CoupleName: "Ana & Bruno",
		StartDate:  "2023-01-01",
		Message:    "...",
		PlanID:     "basic",
		FileIDs:    ids,
		Status:     "draft",
		CreatedAt:  time.Now(),
	}))

	return e
}

func (e *env) sequencer(attempts int) *Sequencer {
	return e.sequencerWith(NewPollingWaiter(e.sessions, attempts, time.Millisecond, e.log), e.drafts)
}

func (e *env) sequencerWith(w SessionWaiter, slots DraftSlots) *Sequencer {
	return NewSequencer(w, slots, e.files, e.backend, e.uploader, Paths{Payment: "/payment", Draft: "/create"}, e.log)
}

func (e *env) slotPresent(t *testing.T) bool {
	t.Helper()
	_, err := e.drafts.Load(context.Background(), e.attempt.ID)
	if err == drafts.ErrSlotEmpty {
		return false
	}
	require.NoError(t, err)
	return true
}

func (e *env) stagedCount(t *testing.T) int {
	t.Helper()
	var n int
	require.NoError(t, e.db.QueryRow(`SELECT COUNT(*) FROM staged_files`).Scan(&n))
	return n
}

package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/lovesurprise/internal/client/config"
	"github.com/dmitrijs2005/lovesurprise/internal/client/handoff"
	"github.com/dmitrijs2005/lovesurprise/internal/client/models"
	"github.com/dmitrijs2005/lovesurprise/internal/client/services"
	"github.com/dmitrijs2005/lovesurprise/internal/logging"
)

type fakeAuth struct {
	regArgs   []string
	regErr    error
	loginArgs []string
	loginErr  error
	result    *handoff.Result
	resumes   int
	logouts   int
	pingErr   error

	profile    services.ProfileChange
	profileRet *models.Session
	profileErr error
}

func (f *fakeAuth) Register(_ context.Context, name, email, pw string) (*handoff.Result, error) {
	f.regArgs = []string{name, email, pw}
	return f.result, f.regErr
}
func (f *fakeAuth) Login(_ context.Context, email, pw string) (*handoff.Result, error) {
	f.loginArgs = []string{email, pw}
	return f.result, f.loginErr
}
func (f *fakeAuth) Resume(context.Context) (*handoff.Result, error) {
	f.resumes++
	return f.result, nil
}
func (f *fakeAuth) Logout(context.Context) error { f.logouts++; return nil }
func (f *fakeAuth) Ping(context.Context) error   { return f.pingErr }
func (f *fakeAuth) Close(context.Context) error  { return nil }

func (f *fakeAuth) UpdateProfile(_ context.Context, ch services.ProfileChange) (*models.Session, error) {
	f.profile = ch
	return f.profileRet, f.profileErr
}

type fakeDrafts struct {
	in      services.DraftInput
	id      string
	err     error
	pending []string
	drafts  map[string]*models.Draft

	discarded  []string
	discardErr error
}

func (f *fakeDrafts) Create(_ context.Context, in services.DraftInput) (string, error) {
	f.in = in
	return f.id, f.err
}
func (f *fakeDrafts) Get(_ context.Context, id string) (*models.Draft, error) {
	return f.drafts[id], nil
}
func (f *fakeDrafts) Pending(context.Context) ([]string, error) { return f.pending, nil }
func (f *fakeDrafts) Discard(_ context.Context, id string) error {
	f.discarded = append(f.discarded, id)
	return f.discardErr
}

type fakePayments struct {
	link      string
	err       error
	confirmed []string
	active    bool
}

func (f *fakePayments) Confirm(_ context.Context, id string) (string, error) {
	f.confirmed = append(f.confirmed, id)
	return f.link, f.err
}
func (f *fakePayments) CheckStatus(context.Context, string) (bool, error) { return f.active, nil }
func (f *fakePayments) ClearLastPayment(context.Context) error            { return nil }

type fakeSurprises struct {
	items []*models.Surprise
	one   *models.Surprise
	err   error
}

func (f *fakeSurprises) List(context.Context) ([]*models.Surprise, error) { return f.items, f.err }
func (f *fakeSurprises) Show(context.Context, string) (*models.Surprise, error) {
	return f.one, f.err
}
func (f *fakeSurprises) View(context.Context, string) (*models.Surprise, error) {
	return f.one, f.err
}

func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.ExportDir = t.TempDir()

	var out bytes.Buffer
	return &App{
		config:          cfg,
		log:             logging.Nop{},
		authService:     &fakeAuth{},
		draftService:    &fakeDrafts{},
		paymentService:  &fakePayments{},
		surpriseService: &fakeSurprises{},
		reader:          bufio.NewReader(strings.NewReader(input)),
		out:             &out,
		now:             func() time.Time { return time.Date(2025, 1, 1, 12, 0, 0, 0, time.Local) },
	}, &out
}

// stubSecrets answers hidden prompts in order.
func stubSecrets(t *testing.T, answers ...string) *[]string {
	t.Helper()
	var prompts []string
	orig := getSecret
	getSecret = func(_ io.Writer, prompt string) ([]byte, error) {
		prompts = append(prompts, prompt)
		if len(answers) == 0 {
			return nil, io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return []byte(a), nil
	}
	t.Cleanup(func() { getSecret = orig })
	return &prompts
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

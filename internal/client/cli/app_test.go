package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lifementor/lifementor-cli/internal/client/auth"
	"github.com/lifementor/lifementor-cli/internal/client/models"
	"github.com/lifementor/lifementor-cli/internal/client/session"
	"github.com/lifementor/lifementor-cli/internal/logging"
)

// ------------ helpers ------------

func readerFromLines(lines ...string) *bufio.Reader {
	if len(lines) == 0 || lines[len(lines)-1] != "" {
		lines = append(lines, "")
	}
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// captureOutput redirects printlnFn into a slice for the duration of a test.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, strings.TrimSpace(fmt.Sprintln(args...)))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

// joined returns the captured output as one string for Contains checks.
func joined(lines *[]string) string {
	return strings.Join(*lines, "\n")
}

// ------------ fakes ------------

type fakeAuthSvc struct {
	sess *session.Store

	payload *models.AuthPayload
	msg     string
	err     error

	lastRegister models.RegisterRequest
	lastEmail    string
	lastToken    string
}

func (f *fakeAuthSvc) persist() {
	if f.payload != nil && f.sess != nil {
		_ = f.sess.Set(f.payload.Token, &f.payload.User)
	}
}

func (f *fakeAuthSvc) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthPayload, error) {
	f.lastRegister = req
	if f.err != nil {
		return nil, f.err
	}
	f.persist()
	return f.payload, nil
}

func (f *fakeAuthSvc) Login(ctx context.Context, email, password string) (*models.AuthPayload, error) {
	f.lastEmail = email
	if f.err != nil {
		return nil, f.err
	}
	f.persist()
	return f.payload, nil
}

func (f *fakeAuthSvc) ForgotPassword(ctx context.Context, email string) (string, error) {
	f.lastEmail = email
	return f.msg, f.err
}

func (f *fakeAuthSvc) ResetPassword(ctx context.Context, token, newPassword, confirmPassword string) (*models.AuthPayload, error) {
	f.lastToken = token
	if f.err != nil {
		return nil, f.err
	}
	f.persist()
	return f.payload, nil
}

func (f *fakeAuthSvc) ValidateToken(ctx context.Context) error { return f.err }

func (f *fakeAuthSvc) Logout() error {
	if f.sess != nil {
		return f.sess.Clear()
	}
	return nil
}

type fakeProfileSvc struct {
	user    *models.UserProfile
	msg     string
	url     string
	status  bool
	err     error

	getCount    int
	lastUpdates map[string]any
	lastFile    string
	deleted     bool
	delPic      bool
}

func (f *fakeProfileSvc) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	f.getCount++
	return f.user, f.err
}

func (f *fakeProfileSvc) UpdateProfile(ctx context.Context, updates map[string]any) (*models.UserProfile, error) {
	f.lastUpdates = updates
	return f.user, f.err
}

func (f *fakeProfileSvc) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (string, error) {
	return f.msg, f.err
}

func (f *fakeProfileSvc) UploadPicture(ctx context.Context, fileName string, contents io.Reader) (string, error) {
	f.lastFile = fileName
	return f.url, f.err
}

func (f *fakeProfileSvc) DeletePicture(ctx context.Context) error { f.delPic = true; return f.err }
func (f *fakeProfileSvc) DeleteAccount(ctx context.Context) error { f.deleted = true; return f.err }
func (f *fakeProfileSvc) DeactivateAccount(ctx context.Context) (string, error) {
	return f.msg, f.err
}
func (f *fakeProfileSvc) AssessmentStatus(ctx context.Context) (bool, error) {
	return f.status, f.err
}

type fakeAssessmentSvc struct {
	stored *models.LifestyleAssessment
	msg    string
	has    bool
	err    error

	lastInput   models.AssessmentInput
	lastUpdates map[string]any
	getCount    int
	deleted     bool
}

func (f *fakeAssessmentSvc) CreateOrUpdate(ctx context.Context, input models.AssessmentInput) (*models.LifestyleAssessment, error) {
	f.lastInput = input
	return f.stored, f.err
}

func (f *fakeAssessmentSvc) Get(ctx context.Context) (*models.LifestyleAssessment, error) {
	f.getCount++
	return f.stored, f.err
}

func (f *fakeAssessmentSvc) Update(ctx context.Context, updates map[string]any) (*models.LifestyleAssessment, error) {
	f.lastUpdates = updates
	return f.stored, f.err
}

func (f *fakeAssessmentSvc) Delete(ctx context.Context) (string, error) {
	f.deleted = true
	return f.msg, f.err
}

func (f *fakeAssessmentSvc) HasAssessment(ctx context.Context) (bool, error) {
	return f.has, f.err
}

type fakeStatsSvc struct {
	stats *models.DashboardStats
	err   error
}

func (f *fakeStatsSvc) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	return f.stats, f.err
}

// newTestApp builds an App over a temp session store and the given fakes.
func newTestApp(t *testing.T, authSvc *fakeAuthSvc, profile *fakeProfileSvc, assessment *fakeAssessmentSvc, stats *fakeStatsSvc, r *bufio.Reader) *App {
	t.Helper()

	sess, err := session.NewStore(t.TempDir())
	require.NoError(t, err)
	if authSvc == nil {
		authSvc = &fakeAuthSvc{}
	}
	authSvc.sess = sess

	log := testLogger()

	return &App{
		session:    sess,
		provider:   auth.NewProvider(authSvc, sess, log),
		profile:    profile,
		assessment: assessment,
		stats:      stats,
		reader:     r,
		log:        log,
	}
}

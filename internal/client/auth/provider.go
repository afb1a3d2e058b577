// Package auth exposes the single in-process source of truth for the current
// user, backed by the session store. UI code reads state from here and never
// touches the store directly.
package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/lifementor/lifementor-cli/internal/client/api"
	"github.com/lifementor/lifementor-cli/internal/client/models"
	"github.com/lifementor/lifementor-cli/internal/client/services"
	"github.com/lifementor/lifementor-cli/internal/client/session"
	"github.com/lifementor/lifementor-cli/internal/logging"
)

// Result is the outcome shape every auth operation hands to the UI. Transport
// errors are converted into it, never re-thrown to the caller.
type Result struct {
	Success bool
	Message string
	Data    *models.AuthPayload
}

// Provider holds the current user in memory and mediates all auth flows.
// Construction hydrates synchronously from the session store; there is no
// startup round-trip to validate the cached token, so a stale token only
// surfaces as a 401 on the next request.
type Provider struct {
	mu   sync.RWMutex
	user *models.UserProfile

	auth    services.AuthService
	session *session.Store
	log     logging.Logger

	onChange []func(*models.UserProfile)
}

// NewProvider constructs a Provider hydrated from the session store.
func NewProvider(authSvc services.AuthService, sess *session.Store, log logging.Logger) *Provider {
	p := &Provider{auth: authSvc, session: sess, log: log}
	if cached := sess.Get(); cached.User != nil {
		p.user = cached.User
		log.Debug(context.Background(), "session hydrated", "email", cached.User.Email)
	}
	return p
}

// OnChange registers a callback fired after every user-state change. The
// REPL prompt subscribes here.
func (p *Provider) OnChange(fn func(*models.UserProfile)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onChange = append(p.onChange, fn)
}

// CurrentUser returns the in-memory user snapshot, or nil when logged out.
func (p *Provider) CurrentUser() *models.UserProfile {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.user
}

// IsAuthenticated reports whether a user is present.
func (p *Provider) IsAuthenticated() bool {
	return p.CurrentUser() != nil
}

// Login authenticates and stores the session on success.
func (p *Provider) Login(ctx context.Context, email, password string) Result {
	payload, err := p.auth.Login(ctx, email, password)
	if err != nil {
		return failure(err)
	}
	p.setUser(&payload.User)
	return Result{Success: true, Data: payload}
}

// Register creates an account and stores the returned session.
func (p *Provider) Register(ctx context.Context, req models.RegisterRequest) Result {
	payload, err := p.auth.Register(ctx, req)
	if err != nil {
		return failure(err)
	}
	p.setUser(&payload.User)
	return Result{Success: true, Data: payload}
}

// ForgotPassword requests a reset email.
func (p *Provider) ForgotPassword(ctx context.Context, email string) Result {
	msg, err := p.auth.ForgotPassword(ctx, email)
	if err != nil {
		return failure(err)
	}
	return Result{Success: true, Message: msg}
}

// ResetPassword exchanges a reset token for a new password; success stores
// the returned session (reset implies fresh login).
func (p *Provider) ResetPassword(ctx context.Context, token, newPassword, confirmPassword string) Result {
	payload, err := p.auth.ResetPassword(ctx, token, newPassword, confirmPassword)
	if err != nil {
		return failure(err)
	}
	p.setUser(&payload.User)
	return Result{Success: true, Data: payload}
}

// Logout clears the session store and the in-memory user. Local only, no
// network call.
func (p *Provider) Logout() {
	if err := p.auth.Logout(); err != nil {
		p.log.Error(context.Background(), "clearing session on logout", "error", err)
	}
	p.setUser(nil)
}

// ForceLogout drops the in-memory user after the HTTP layer has already
// cleared the persisted session on a 401.
func (p *Provider) ForceLogout() {
	p.setUser(nil)
}

// UpdateUser merges partial fields into the cached user without a network
// round trip. Used after mutations whose HTTP response already carried the
// new field values.
func (p *Provider) UpdateUser(patch map[string]any) (*models.UserProfile, error) {
	user, err := p.session.ApplyUserPatch(patch)
	if err != nil {
		return nil, err
	}
	p.setUser(user)
	return user, nil
}

// Refresh replaces the in-memory user with whatever the session store holds.
// Profile mutations persist through the store; calling Refresh afterwards
// keeps the cached snapshot in step.
func (p *Provider) Refresh() *models.UserProfile {
	cached := p.session.Get()
	p.setUser(cached.User)
	return cached.User
}

func (p *Provider) setUser(user *models.UserProfile) {
	p.mu.Lock()
	p.user = user
	callbacks := make([]func(*models.UserProfile), len(p.onChange))
	copy(callbacks, p.onChange)
	p.mu.Unlock()

	for _, fn := range callbacks {
		fn(user)
	}
}

// failure converts an error into the Result shape, preferring the server's
// message when the error carries one.
func failure(err error) Result {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return Result{Message: apiErr.Message}
	}
	return Result{Message: err.Error()}
}

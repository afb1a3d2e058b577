package services

import (
	"context"
	"fmt"

	"github.com/lifementor/lifementor-cli/internal/client/models"
	"github.com/lifementor/lifementor-cli/internal/client/session"
)

// AuthService defines the authentication operations of the client.
//
// Contract:
//   - Register/Login/ResetPassword: call the backend and, on success, write
//     the returned token and user through to the session store.
//   - ForgotPassword: request a reset email; returns the server message.
//   - ValidateToken: ask the backend whether the stored token is still good.
//   - Logout: local only — clears the session, no network call.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthPayload, error)
	Login(ctx context.Context, email, password string) (*models.AuthPayload, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword, confirmPassword string) (*models.AuthPayload, error)
	ValidateToken(ctx context.Context) error
	Logout() error
}

type authService struct {
	transport Transport
	session   *session.Store
}

// NewAuthService constructs an AuthService bound to the given transport and
// session store.
func NewAuthService(transport Transport, sess *session.Store) AuthService {
	return &authService{transport: transport, session: sess}
}

// Register creates a new account. An empty ConfirmPassword defaults to
// Password: the caller's single password field already validated the value,
// and the API contract requires both.
func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthPayload, error) {
	if req.ConfirmPassword == "" {
		req.ConfirmPassword = req.Password
	}

	env, err := s.transport.Post(ctx, "/auth/register", req)
	if err != nil {
		return nil, err
	}
	return s.storeAuthPayload(env)
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.AuthPayload, error) {
	body := map[string]string{"email": email, "password": password}

	env, err := s.transport.Post(ctx, "/auth/login", body)
	if err != nil {
		return nil, err
	}
	return s.storeAuthPayload(env)
}

func (s *authService) ForgotPassword(ctx context.Context, email string) (string, error) {
	env, err := s.transport.Post(ctx, "/auth/forgot-password", map[string]string{"email": email})
	if err != nil {
		return "", err
	}
	if err := envelopeError(env); err != nil {
		return "", err
	}
	return env.Message, nil
}

// ResetPassword exchanges a reset token for a new password. Success implies a
// fresh login: the returned session is stored.
func (s *authService) ResetPassword(ctx context.Context, token, newPassword, confirmPassword string) (*models.AuthPayload, error) {
	body := map[string]string{
		"token":           token,
		"newPassword":     newPassword,
		"confirmPassword": confirmPassword,
	}

	env, err := s.transport.Post(ctx, "/auth/reset-password", body)
	if err != nil {
		return nil, err
	}
	return s.storeAuthPayload(env)
}

func (s *authService) ValidateToken(ctx context.Context) error {
	env, err := s.transport.Post(ctx, "/auth/validate-token", nil)
	if err != nil {
		return err
	}
	return envelopeError(env)
}

// Logout clears the local session. No server-side revocation is performed.
func (s *authService) Logout() error {
	return s.session.Clear()
}

// storeAuthPayload decodes the auth payload and writes token and user
// through to the session store together.
func (s *authService) storeAuthPayload(env *models.Envelope) (*models.AuthPayload, error) {
	if err := envelopeError(env); err != nil {
		return nil, err
	}

	var payload models.AuthPayload
	if err := env.DecodeData(&payload); err != nil {
		return nil, fmt.Errorf("decoding auth payload: %w", err)
	}

	if payload.Token != "" {
		if err := s.session.Set(payload.Token, &payload.User); err != nil {
			return nil, fmt.Errorf("storing session: %w", err)
		}
	}
	return &payload, nil
}

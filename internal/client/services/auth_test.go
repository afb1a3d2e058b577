package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lifementor/lifementor-cli/internal/client/models"
	"github.com/lifementor/lifementor-cli/internal/client/session"
)

func newSessionStore(t *testing.T) *session.Store {
	t.Helper()
	s, err := session.NewStore(t.TempDir())
	require.NoError(t, err)
	return s
}

const authPayloadJSON = `{
	"token": "tok-1",
	"user": {"id": 7, "name": "Asha", "email": "asha@example.com", "emailVerified": true}
}`

func TestAuthService_Login_StoresSession(t *testing.T) {
	ft := &fakeTransport{Env: okEnvelope(authPayloadJSON)}
	store := newSessionStore(t)
	svc := NewAuthService(ft, store)

	payload, err := svc.Login(context.Background(), "asha@example.com", "secret")
	require.NoError(t, err)
	require.Equal(t, "tok-1", payload.Token)
	require.Equal(t, "Asha", payload.User.Name)

	call := ft.lastCall(t)
	require.Equal(t, "POST", call.Method)
	require.Equal(t, "/auth/login", call.Path)
	require.Equal(t, map[string]string{"email": "asha@example.com", "password": "secret"}, call.Body)

	sess := store.Get()
	require.Equal(t, "tok-1", sess.Token)
	require.Equal(t, "asha@example.com", sess.User.Email)
}

func TestAuthService_Login_FailureEnvelopeDoesNotStore(t *testing.T) {
	ft := &fakeTransport{Env: &models.Envelope{Success: false, Message: "Invalid credentials"}}
	store := newSessionStore(t)
	svc := NewAuthService(ft, store)

	_, err := svc.Login(context.Background(), "asha@example.com", "wrong")
	require.EqualError(t, err, "Invalid credentials")
	require.False(t, store.IsAuthenticated())
}

func TestAuthService_Register_DefaultsConfirmPassword(t *testing.T) {
	ft := &fakeTransport{Env: okEnvelope(authPayloadJSON)}
	svc := NewAuthService(ft, newSessionStore(t))

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	sent, ok := ft.lastCall(t).Body.(models.RegisterRequest)
	require.True(t, ok)
	require.Equal(t, "secret", sent.ConfirmPassword)
}

func TestAuthService_Register_KeepsExplicitConfirmPassword(t *testing.T) {
	ft := &fakeTransport{Env: okEnvelope(authPayloadJSON)}
	svc := NewAuthService(ft, newSessionStore(t))

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:            "Asha",
		Email:           "asha@example.com",
		Password:        "secret",
		ConfirmPassword: "other",
	})
	require.NoError(t, err)

	sent := ft.lastCall(t).Body.(models.RegisterRequest)
	require.Equal(t, "other", sent.ConfirmPassword)
}

func TestAuthService_ForgotPassword_ReturnsMessage(t *testing.T) {
	ft := &fakeTransport{Env: &models.Envelope{Success: true, Message: "Reset email sent"}}
	svc := NewAuthService(ft, newSessionStore(t))

	msg, err := svc.ForgotPassword(context.Background(), "asha@example.com")
	require.NoError(t, err)
	require.Equal(t, "Reset email sent", msg)

	call := ft.lastCall(t)
	require.Equal(t, "/auth/forgot-password", call.Path)
	require.Equal(t, map[string]string{"email": "asha@example.com"}, call.Body)
}

func TestAuthService_ResetPassword_StoresFreshSession(t *testing.T) {
	ft := &fakeTransport{Env: okEnvelope(authPayloadJSON)}
	store := newSessionStore(t)
	svc := NewAuthService(ft, store)

	payload, err := svc.ResetPassword(context.Background(), "reset-tok", "newpass", "newpass")
	require.NoError(t, err)
	require.Equal(t, "tok-1", payload.Token)

	call := ft.lastCall(t)
	require.Equal(t, "/auth/reset-password", call.Path)
	require.Equal(t, map[string]string{
		"token":           "reset-tok",
		"newPassword":     "newpass",
		"confirmPassword": "newpass",
	}, call.Body)

	require.True(t, store.IsAuthenticated())
}

func TestAuthService_ValidateToken(t *testing.T) {
	ft := &fakeTransport{Env: &models.Envelope{Success: true}}
	svc := NewAuthService(ft, newSessionStore(t))

	require.NoError(t, svc.ValidateToken(context.Background()))
	require.Equal(t, "/auth/validate-token", ft.lastCall(t).Path)
}

func TestAuthService_Logout_ClearsSessionWithoutNetworkCall(t *testing.T) {
	ft := &fakeTransport{}
	store := newSessionStore(t)
	require.NoError(t, store.Set("tok-1", &models.UserProfile{ID: 7}))
	svc := NewAuthService(ft, store)

	require.NoError(t, svc.Logout())
	require.False(t, store.IsAuthenticated())
	require.Empty(t, ft.Calls)
}

func TestAuthService_TransportErrorPropagates(t *testing.T) {
	boom := errors.New("connection refused")
	ft := &fakeTransport{Err: boom}
	store := newSessionStore(t)
	svc := NewAuthService(ft, store)

	_, err := svc.Login(context.Background(), "a@b.c", "x")
	require.ErrorIs(t, err, boom)
	require.False(t, store.IsAuthenticated())
}

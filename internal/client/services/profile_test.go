package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lifementor/lifementor-cli/internal/client/models"
	"github.com/lifementor/lifementor-cli/internal/client/session"
)

func seededStore(t *testing.T) *session.Store {
	t.Helper()
	store := newSessionStore(t)
	require.NoError(t, store.Set("tok-1", &models.UserProfile{
		ID:          7,
		Name:        "Asha",
		Email:       "asha@example.com",
		Bio:         "hello",
		PhoneNumber: "123",
	}))
	return store
}

func TestProfileService_GetProfile(t *testing.T) {
	ft := &fakeTransport{Env: okEnvelope(`{"id":7,"name":"Asha","email":"asha@example.com"}`)}
	svc := NewProfileService(ft, newSessionStore(t))

	profile, err := svc.GetProfile(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(7), profile.ID)

	call := ft.lastCall(t)
	require.Equal(t, "GET", call.Method)
	require.Equal(t, "/profile", call.Path)
}

func TestProfileService_UpdateProfile_FiltersAndMerges(t *testing.T) {
	ft := &fakeTransport{Env: okEnvelope(`{"name":"Asha K","bio":"updated"}`)}
	store := seededStore(t)
	svc := NewProfileService(ft, store)

	user, err := svc.UpdateProfile(context.Background(), map[string]any{
		"name":        "Asha K",
		"bio":         "updated",
		"phoneNumber": "",
		"gender":      nil,
	})
	require.NoError(t, err)

	// empty and nil fields never reach the wire
	sent, ok := ft.lastCall(t).Body.(map[string]any)
	require.True(t, ok)
	require.Equal(t, map[string]any{"name": "Asha K", "bio": "updated"}, sent)

	// returned fields are merged over the cached user, the rest survives
	require.Equal(t, "Asha K", user.Name)
	require.Equal(t, "updated", user.Bio)
	require.Equal(t, "asha@example.com", user.Email)
	require.Equal(t, "123", user.PhoneNumber)

	require.Equal(t, "Asha K", store.Get().User.Name)
}

func TestProfileService_ChangePassword(t *testing.T) {
	ft := &fakeTransport{Env: &models.Envelope{Success: true, Message: "Password changed"}}
	svc := NewProfileService(ft, newSessionStore(t))

	msg, err := svc.ChangePassword(context.Background(), models.ChangePasswordRequest{
		CurrentPassword: "old",
		NewPassword:     "new",
		ConfirmPassword: "new",
	})
	require.NoError(t, err)
	require.Equal(t, "Password changed", msg)
	require.Equal(t, "/profile/change-password", ft.lastCall(t).Path)
}

func TestProfileService_UploadPicture_WriteThrough(t *testing.T) {
	ft := &fakeTransport{Env: okEnvelope(`"https://x/y.jpg"`)}
	store := seededStore(t)
	svc := NewProfileService(ft, store)

	url, err := svc.UploadPicture(context.Background(), "me.jpg", strings.NewReader("jpegdata"))
	require.NoError(t, err)
	require.Equal(t, "https://x/y.jpg", url)

	call := ft.lastCall(t)
	require.Equal(t, "/profile/upload-picture", call.Path)
	require.Equal(t, "file", call.FieldName)
	require.Equal(t, "me.jpg", call.FileName)
	require.Equal(t, "jpegdata", call.Contents)

	// only profilePictureUrl changed in the cache
	cached := store.Get().User
	require.Equal(t, "https://x/y.jpg", cached.ProfilePictureURL)
	require.Equal(t, "Asha", cached.Name)
	require.Equal(t, "asha@example.com", cached.Email)
	require.Equal(t, "hello", cached.Bio)
	require.Equal(t, "123", cached.PhoneNumber)
}

func TestProfileService_DeletePicture_ClearsCachedURL(t *testing.T) {
	ft := &fakeTransport{Env: &models.Envelope{Success: true}}
	store := newSessionStore(t)
	require.NoError(t, store.Set("tok-1", &models.UserProfile{
		ID:                7,
		ProfilePictureURL: "https://x/y.jpg",
	}))
	svc := NewProfileService(ft, store)

	require.NoError(t, svc.DeletePicture(context.Background()))
	require.Equal(t, "/profile/picture", ft.lastCall(t).Path)
	require.Empty(t, store.Get().User.ProfilePictureURL)
}

func TestProfileService_DeleteAccount_ClearsSession(t *testing.T) {
	ft := &fakeTransport{Env: &models.Envelope{Success: true}}
	store := seededStore(t)
	svc := NewProfileService(ft, store)

	require.NoError(t, svc.DeleteAccount(context.Background()))
	require.Equal(t, "/profile/account", ft.lastCall(t).Path)
	require.False(t, store.IsAuthenticated())
	require.Nil(t, store.Get().User)
}

func TestProfileService_DeactivateAccount(t *testing.T) {
	ft := &fakeTransport{Env: &models.Envelope{Success: true, Message: "Account deactivated"}}
	svc := NewProfileService(ft, newSessionStore(t))

	msg, err := svc.DeactivateAccount(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Account deactivated", msg)
	require.Equal(t, "/profile/deactivate", ft.lastCall(t).Path)
}

func TestProfileService_AssessmentStatus(t *testing.T) {
	ft := &fakeTransport{Env: okEnvelope(`true`)}
	svc := NewProfileService(ft, newSessionStore(t))

	has, err := svc.AssessmentStatus(context.Background())
	require.NoError(t, err)
	require.True(t, has)
	require.Equal(t, "/profile/assessment-status", ft.lastCall(t).Path)
}

func TestProfileService_FailureEnvelopeDoesNotTouchCache(t *testing.T) {
	ft := &fakeTransport{Env: &models.Envelope{Success: false, Message: "Invalid phone number"}}
	store := seededStore(t)
	svc := NewProfileService(ft, store)

	_, err := svc.UpdateProfile(context.Background(), map[string]any{"phoneNumber": "abc"})
	require.EqualError(t, err, "Invalid phone number")
	require.Equal(t, "Asha", store.Get().User.Name)
	require.Equal(t, "123", store.Get().User.PhoneNumber)
}

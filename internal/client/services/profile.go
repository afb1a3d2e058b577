package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/lifementor/lifementor-cli/internal/client/models"
	"github.com/lifementor/lifementor-cli/internal/client/session"
)

// ProfileService maps profile-screen intents to HTTP calls. Successful
// mutations patch the cached user snapshot immediately (write-through), so
// callers never see stale derived fields between the mutation response and a
// future refetch.
type ProfileService interface {
	GetProfile(ctx context.Context) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, updates map[string]any) (*models.UserProfile, error)
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (string, error)
	UploadPicture(ctx context.Context, fileName string, contents io.Reader) (string, error)
	DeletePicture(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	DeactivateAccount(ctx context.Context) (string, error)
	AssessmentStatus(ctx context.Context) (bool, error)
}

type profileService struct {
	transport Transport
	session   *session.Store
}

// NewProfileService constructs a ProfileService bound to the given transport
// and session store.
func NewProfileService(transport Transport, sess *session.Store) ProfileService {
	return &profileService{transport: transport, session: sess}
}

func (s *profileService) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	env, err := s.transport.Get(ctx, "/profile")
	if err != nil {
		return nil, err
	}
	if err := envelopeError(env); err != nil {
		return nil, err
	}

	var profile models.UserProfile
	if err := env.DecodeData(&profile); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}
	return &profile, nil
}

// UpdateProfile sends a partial update. Empty-string and nil values are
// stripped first; the fields the server echoes back are merged into the
// cached user.
func (s *profileService) UpdateProfile(ctx context.Context, updates map[string]any) (*models.UserProfile, error) {
	env, err := s.transport.Put(ctx, "/profile", filterEmpty(updates))
	if err != nil {
		return nil, err
	}
	if err := envelopeError(env); err != nil {
		return nil, err
	}

	var patch map[string]any
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &patch); err != nil {
			return nil, fmt.Errorf("decoding updated profile: %w", err)
		}
	}
	return s.session.ApplyUserPatch(patch)
}

func (s *profileService) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (string, error) {
	env, err := s.transport.Post(ctx, "/profile/change-password", req)
	if err != nil {
		return "", err
	}
	if err := envelopeError(env); err != nil {
		return "", err
	}
	return env.Message, nil
}

// UploadPicture sends the picture as multipart form data under the "file"
// field and write-through-caches the returned URL.
func (s *profileService) UploadPicture(ctx context.Context, fileName string, contents io.Reader) (string, error) {
	env, err := s.transport.PostFile(ctx, "/profile/upload-picture", "file", fileName, contents)
	if err != nil {
		return "", err
	}
	if err := envelopeError(env); err != nil {
		return "", err
	}

	var url string
	if err := env.DecodeData(&url); err != nil {
		return "", fmt.Errorf("decoding picture url: %w", err)
	}

	if _, err := s.session.ApplyUserPatch(map[string]any{"profilePictureUrl": url}); err != nil {
		return "", err
	}
	return url, nil
}

func (s *profileService) DeletePicture(ctx context.Context) error {
	env, err := s.transport.Delete(ctx, "/profile/picture")
	if err != nil {
		return err
	}
	if err := envelopeError(env); err != nil {
		return err
	}

	_, err = s.session.ApplyUserPatch(map[string]any{"profilePictureUrl": nil})
	return err
}

// DeleteAccount removes the account server-side and drops the whole local
// session.
func (s *profileService) DeleteAccount(ctx context.Context) error {
	env, err := s.transport.Delete(ctx, "/profile/account")
	if err != nil {
		return err
	}
	if err := envelopeError(env); err != nil {
		return err
	}
	return s.session.Clear()
}

func (s *profileService) DeactivateAccount(ctx context.Context) (string, error) {
	env, err := s.transport.Post(ctx, "/profile/deactivate", nil)
	if err != nil {
		return "", err
	}
	if err := envelopeError(env); err != nil {
		return "", err
	}
	return env.Message, nil
}

// AssessmentStatus asks the backend whether the user has a lifestyle
// assessment on record.
func (s *profileService) AssessmentStatus(ctx context.Context) (bool, error) {
	env, err := s.transport.Get(ctx, "/profile/assessment-status")
	if err != nil {
		return false, err
	}
	if err := envelopeError(env); err != nil {
		return false, err
	}

	var has bool
	if err := env.DecodeData(&has); err != nil {
		return false, fmt.Errorf("decoding assessment status: %w", err)
	}
	return has, nil
}

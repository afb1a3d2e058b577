// Package services contains the Life Mentor domain services. Each service is
// a stateless mapping from one UI intent to one HTTP call, plus the
// write-through caching the profile and auth flows rely on.
package services

import (
	"context"
	"fmt"
	"io"

	"github.com/lifementor/lifementor-cli/internal/client/models"
)

// Transport is the HTTP surface the services depend on. *api.Client
// implements it; tests substitute fakes.
type Transport interface {
	Get(ctx context.Context, path string) (*models.Envelope, error)
	Post(ctx context.Context, path string, body any) (*models.Envelope, error)
	Put(ctx context.Context, path string, body any) (*models.Envelope, error)
	Delete(ctx context.Context, path string) (*models.Envelope, error)
	PostFile(ctx context.Context, path, fieldName, fileName string, contents io.Reader) (*models.Envelope, error)
}

// envelopeError converts a 2xx response whose envelope reports failure into
// an error carrying the server message.
func envelopeError(env *models.Envelope) error {
	if env.Success {
		return nil
	}
	if env.Message == "" {
		return fmt.Errorf("request failed")
	}
	return fmt.Errorf("%s", env.Message)
}

// filterEmpty returns a copy of updates without keys whose value is nil or an
// empty string. Omission, not explicit clearing, is the partial-update
// semantics for unchanged fields.
func filterEmpty(updates map[string]any) map[string]any {
	filtered := make(map[string]any, len(updates))
	for k, v := range updates {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		filtered[k] = v
	}
	return filtered
}

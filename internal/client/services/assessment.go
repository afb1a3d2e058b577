package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/lifementor/lifementor-cli/internal/client/api"
	"github.com/lifementor/lifementor-cli/internal/client/models"
)

// AssessmentService maps lifestyle-assessment intents to HTTP calls. The
// record is fetched once per view and never cached beyond it.
type AssessmentService interface {
	// CreateOrUpdate upserts the full assessment form.
	CreateOrUpdate(ctx context.Context, input models.AssessmentInput) (*models.LifestyleAssessment, error)

	// Get fetches the assessment. A 404 propagates as an *api.APIError;
	// only HasAssessment interprets it.
	Get(ctx context.Context) (*models.LifestyleAssessment, error)

	// Update sends a partial update with empty fields stripped.
	Update(ctx context.Context, updates map[string]any) (*models.LifestyleAssessment, error)

	Delete(ctx context.Context) (string, error)

	// HasAssessment probes for existence: 404 means false, 2xx means true,
	// any other failure is returned as an error.
	HasAssessment(ctx context.Context) (bool, error)
}

type assessmentService struct {
	transport Transport
}

// NewAssessmentService constructs an AssessmentService bound to the given
// transport.
func NewAssessmentService(transport Transport) AssessmentService {
	return &assessmentService{transport: transport}
}

func (s *assessmentService) CreateOrUpdate(ctx context.Context, input models.AssessmentInput) (*models.LifestyleAssessment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	input.SleepTime = normalizeClockTime(input.SleepTime)
	input.WakeUpTime = normalizeClockTime(input.WakeUpTime)

	env, err := s.transport.Post(ctx, "/lifestyle-assessment", input)
	if err != nil {
		return nil, err
	}
	return decodeAssessment(env)
}

func (s *assessmentService) Get(ctx context.Context) (*models.LifestyleAssessment, error) {
	env, err := s.transport.Get(ctx, "/lifestyle-assessment")
	if err != nil {
		return nil, err
	}
	return decodeAssessment(env)
}

func (s *assessmentService) Update(ctx context.Context, updates map[string]any) (*models.LifestyleAssessment, error) {
	filtered := filterEmpty(updates)

	for _, key := range []string{"sleepTime", "wakeUpTime"} {
		if v, ok := filtered[key].(string); ok {
			filtered[key] = normalizeClockTime(v)
		}
	}

	env, err := s.transport.Put(ctx, "/lifestyle-assessment", filtered)
	if err != nil {
		return nil, err
	}
	return decodeAssessment(env)
}

func (s *assessmentService) Delete(ctx context.Context) (string, error) {
	env, err := s.transport.Delete(ctx, "/lifestyle-assessment")
	if err != nil {
		return "", err
	}
	if err := envelopeError(env); err != nil {
		return "", err
	}
	return env.Message, nil
}

// HasAssessment implements the probe pattern: absence (404) is a valid
// negative result, not an error.
func (s *assessmentService) HasAssessment(ctx context.Context) (bool, error) {
	_, err := s.transport.Get(ctx, "/lifestyle-assessment")
	if err != nil {
		if api.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func decodeAssessment(env *models.Envelope) (*models.LifestyleAssessment, error) {
	if err := envelopeError(env); err != nil {
		return nil, err
	}
	var out models.LifestyleAssessment
	if err := env.DecodeData(&out); err != nil {
		return nil, fmt.Errorf("decoding assessment: %w", err)
	}
	return &out, nil
}

// normalizeClockTime widens "HH:mm" to "HH:mm:ss". Values that already carry
// a seconds component pass through unchanged, so the normalization is
// idempotent.
func normalizeClockTime(t string) string {
	if t == "" {
		return t
	}
	if strings.Count(t, ":") >= 2 {
		return t
	}
	return t + ":00"
}

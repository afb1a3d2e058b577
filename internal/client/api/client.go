// Package api provides the single configured HTTP client for the Life Mentor
// backend. Every outbound request gets the bearer token attached when one is
// stored; every response passes through one interception point that handles
// forced logout and user-visible error notifications.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lifementor/lifementor-cli/internal/client/models"
	"github.com/lifementor/lifementor-cli/internal/client/session"
	"github.com/lifementor/lifementor-cli/internal/common"
	"github.com/lifementor/lifementor-cli/internal/logging"
)

// genericErrorMessage is the last-resort user notification text.
const genericErrorMessage = "Something went wrong!"

// fileTooLargeMessage is shown for 413 responses from the upload endpoint.
const fileTooLargeMessage = "File size exceeds 5MB limit"

// Client wraps http.Client with the base URL, token attachment and the
// response interception rules shared by all domain services.
type Client struct {
	baseURL  string
	http     *http.Client
	session  *session.Store
	notifier Notifier
	log      logging.Logger

	// onUnauthorized is the forced-logout side effect for 401 responses,
	// the terminal counterpart of a redirect to the login page.
	onUnauthorized func()
}

// New returns a client rooted at baseURL. The session store supplies tokens
// for outbound requests and is cleared on 401.
func New(baseURL string, timeout time.Duration, sess *session.Store, notifier Notifier, log logging.Logger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		session:  sess,
		notifier: notifier,
		log:      log,
	}
}

// SetUnauthorizedHook registers the callback invoked after a 401 response has
// cleared the session. It runs at most once per response.
func (c *Client) SetUnauthorizedHook(fn func()) {
	c.onUnauthorized = fn
}

// Get issues a GET request to path.
func (c *Client) Get(ctx context.Context, path string) (*models.Envelope, error) {
	return c.do(ctx, http.MethodGet, path, "", nil)
}

// Post issues a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*models.Envelope, error) {
	return c.doJSON(ctx, http.MethodPost, path, body)
}

// Put issues a PUT request with an optional JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (*models.Envelope, error) {
	return c.doJSON(ctx, http.MethodPut, path, body)
}

// Delete issues a DELETE request to path.
func (c *Client) Delete(ctx context.Context, path string) (*models.Envelope, error) {
	return c.do(ctx, http.MethodDelete, path, "", nil)
}

// PostFile uploads contents as a multipart form under the given field name.
func (c *Client) PostFile(ctx context.Context, path, fieldName, fileName string, contents io.Reader) (*models.Envelope, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile(fieldName, fileName)
	if err != nil {
		return nil, fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(part, contents); err != nil {
		return nil, fmt.Errorf("reading upload contents: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finalizing multipart body: %w", err)
	}

	return c.do(ctx, http.MethodPost, path, mw.FormDataContentType(), &buf)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any) (*models.Envelope, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}
	return c.do(ctx, method, path, "application/json", reader)
}

// do performs the request and runs the interception rules on the response:
//
//   - 401: clear the session, fire the unauthorized hook, no notification.
//   - 413, or 400 mentioning a file: file-specific notification.
//   - other non-2xx: generic notification (server message, then transport
//     message, then the generic fallback).
//
// Errors are always returned to the caller after the side effects run.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader) (*models.Envelope, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if token := c.session.Token(); token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "transport error", "method", method, "path", path, "error", err)
		c.notify(err.Error())
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.notify(err.Error())
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	env := &models.Envelope{}
	if len(raw) > 0 {
		// A non-envelope body is tolerated; status-code handling below
		// does not depend on it.
		_ = json.Unmarshal(raw, env)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return env, nil
	}

	return nil, c.intercept(ctx, resp.StatusCode, env)
}

func (c *Client) intercept(ctx context.Context, status int, env *models.Envelope) error {
	message := env.Message
	apiErr := &APIError{StatusCode: status, Message: message}

	switch {
	case status == http.StatusUnauthorized:
		// Forced logout. Intentionally silent: a toast on top of the
		// redirect would only add noise.
		if err := c.session.Clear(); err != nil {
			c.log.Error(ctx, "clearing session after 401", "error", err)
		}
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}

	case status == http.StatusRequestEntityTooLarge:
		c.notify(fileTooLargeMessage)

	case status == http.StatusBadRequest && strings.Contains(strings.ToLower(message), "file"):
		c.notify(message)

	default:
		c.notify(message)
	}

	return apiErr
}

func (c *Client) notify(message string) {
	if message == "" {
		message = genericErrorMessage
	}
	c.notifier.Error(message)
}

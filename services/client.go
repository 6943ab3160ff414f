// Package services talks to the ticketing backend and carries the small
// amount of client-side logic the front end owns.
// File: services/client.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"ticket-office/logger"
	"ticket-office/models"
	"ticket-office/monitoring"
)

// requestTimeout is the fixed upper bound on any backend round trip.
// A timeout surfaces as a network-class error.
const requestTimeout = 10 * time.Second

// ------------------ error taxonomy ------------------

// ErrorKind distinguishes the three transport failure classes callers must
// be able to tell apart, plus the 401 case that triggers session teardown.
type ErrorKind int

const (
	// ErrKindRequest: the request could not be constructed or encoded.
	ErrKindRequest ErrorKind = iota + 1
	// ErrKindNetwork: no response was received (includes timeouts).
	ErrKindNetwork
	// ErrKindServer: a response arrived with a failing HTTP status.
	ErrKindServer
	// ErrKindUnauthorized: the backend rejected the bearer token (401).
	ErrKindUnauthorized
	// ErrKindApplication: HTTP 2xx but the envelope status was not "success".
	ErrKindApplication
)

// APIError is the error every backend call returns on failure. Message is
// human-readable and safe to render.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error { return e.Err }

// IsUnauthorized reports whether err is a backend 401. Controllers route
// these through the fail-closed policy.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == ErrKindUnauthorized
}

// FriendlyMessage extracts the displayable message from a backend error,
// falling back when the error carries none.
func FriendlyMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// appError turns an envelope-level failure (status != "success") into a
// displayable error, preferring the backend's own message.
func appError(env *models.Envelope, fallback string) error {
	msg := fallback
	if env != nil && env.Message != "" {
		msg = env.Message
	}
	return &APIError{Kind: ErrKindApplication, Message: msg}
}

func (k ErrorKind) outcome() string {
	switch k {
	case ErrKindRequest:
		return "request_error"
	case ErrKindNetwork:
		return "network_error"
	case ErrKindUnauthorized:
		return "unauthorized"
	default:
		return "server_error"
	}
}

// ------------------ backend client ------------------

// BackendClient is the single HTTP client every service goes through. It
// attaches the bearer token, decodes the response envelope and tags each
// failure with its class.
type BackendClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewBackendClient builds a client for the backend at baseURL. The `/api`
// prefix is appended here; callers pass bare endpoint paths like
// "/auth/login".
func NewBackendClient(baseURL string) *BackendClient {
	for len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	return &BackendClient{
		baseURL:    baseURL + "/api",
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Do performs one backend call and returns the decoded envelope. A non-nil
// envelope with Status != "success" is an application-level failure the
// caller interprets; a non-nil error is a transport-level failure.
func (c *BackendClient) Do(ctx context.Context, method, path, token string, payload interface{}) (*models.Envelope, error) {
	requestID := uuid.NewString()
	url := c.baseURL + path

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			monitoring.ObserveBackendRequest(method, ErrKindRequest.outcome(), 0)
			return nil, &APIError{Kind: ErrKindRequest, Message: "request could not be prepared", Err: err}
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		monitoring.ObserveBackendRequest(method, ErrKindRequest.outcome(), 0)
		return nil, &APIError{Kind: ErrKindRequest, Message: "request could not be prepared", Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	logger.Debug.Printf("Do: [%s] %s request_id=%s", method, url, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		monitoring.ObserveBackendRequest(method, ErrKindNetwork.outcome(), time.Since(start))
		logger.Error.Printf("Do: [%s] %s no response: %v", method, url, err)
		return nil, &APIError{
			Kind:    ErrKindNetwork,
			Message: "no response from the server; it may be down or unreachable",
			Err:     err,
		}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		monitoring.ObserveBackendRequest(method, ErrKindNetwork.outcome(), time.Since(start))
		return nil, &APIError{
			Kind:    ErrKindNetwork,
			Message: "the server response could not be read",
			Err:     err,
		}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		monitoring.ObserveBackendRequest(method, ErrKindUnauthorized.outcome(), time.Since(start))
		logger.Warn.Printf("Do: [%s] %s rejected with 401 request_id=%s", method, url, requestID)
		return nil, &APIError{
			Kind:       ErrKindUnauthorized,
			StatusCode: resp.StatusCode,
			Message:    "your session has expired, please sign in again",
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		monitoring.ObserveBackendRequest(method, ErrKindServer.outcome(), time.Since(start))
		message := fmt.Sprintf("the server responded with an error (%d)", resp.StatusCode)
		// the backend often wraps errors in the usual envelope; prefer its message
		var env models.Envelope
		if json.Unmarshal(raw, &env) == nil && env.Message != "" {
			message = env.Message
		}
		logger.Error.Printf("Do: [%s] %s failed with status %d request_id=%s", method, url, resp.StatusCode, requestID)
		return nil, &APIError{
			Kind:       ErrKindServer,
			StatusCode: resp.StatusCode,
			Message:    message,
		}
	}

	var env models.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		monitoring.ObserveBackendRequest(method, ErrKindServer.outcome(), time.Since(start))
		return nil, &APIError{
			Kind:       ErrKindServer,
			StatusCode: resp.StatusCode,
			Message:    "the server returned an unreadable response",
			Err:        err,
		}
	}
	env.Raw = raw

	monitoring.ObserveBackendRequest(method, "success", time.Since(start))
	logger.Debug.Printf("Do: [%s] %s status=%s request_id=%s", method, url, env.Status, requestID)
	return &env, nil
}

// convenience wrappers

func (c *BackendClient) Get(ctx context.Context, path, token string) (*models.Envelope, error) {
	return c.Do(ctx, http.MethodGet, path, token, nil)
}

func (c *BackendClient) Post(ctx context.Context, path, token string, payload interface{}) (*models.Envelope, error) {
	return c.Do(ctx, http.MethodPost, path, token, payload)
}

func (c *BackendClient) Put(ctx context.Context, path, token string, payload interface{}) (*models.Envelope, error) {
	return c.Do(ctx, http.MethodPut, path, token, payload)
}

func (c *BackendClient) Delete(ctx context.Context, path, token string) (*models.Envelope, error) {
	return c.Do(ctx, http.MethodDelete, path, token, nil)
}

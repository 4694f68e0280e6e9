// Package gateway is the single configured HTTP client for the upstream
// store API: fixed base path, fixed timeout, JSON content negotiation,
// bearer token injection, and logout-on-401. One attempt per call; no
// retries, no backoff.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"roastline/models"

	"go.uber.org/zap"
)

// Client talks to the store API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient builds the store API client. timeout bounds every call.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// GetJSON issues a GET and returns the decoded envelope.
func (c *Client) GetJSON(ctx context.Context, path string) (*models.Envelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, &APIError{Code: 500, Message: FallbackMessage, Errors: []string{err.Error()}}
	}
	return c.do(ctx, req)
}

// PostJSON issues a POST with a JSON body and returns the decoded envelope.
func (c *Client) PostJSON(ctx context.Context, path string, body any) (*models.Envelope, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &APIError{Code: 500, Message: FallbackMessage, Errors: []string{err.Error()}}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, &APIError{Code: 500, Message: FallbackMessage, Errors: []string{err.Error()}}
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(ctx, req)
}

// PostForm issues a POST with a multipart form, the shape the store API
// expects for profile, shipping, and order writes.
func (c *Client) PostForm(ctx context.Context, path string, fields map[string]string) (*models.Envelope, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, &APIError{Code: 500, Message: FallbackMessage, Errors: []string{err.Error()}}
		}
	}
	if err := writer.Close(); err != nil {
		return nil, &APIError{Code: 500, Message: FallbackMessage, Errors: []string{err.Error()}}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, &APIError{Code: 500, Message: FallbackMessage, Errors: []string{err.Error()}}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.do(ctx, req)
}

func (c *Client) do(ctx context.Context, req *http.Request) (*models.Envelope, error) {
	req.Header.Set("Accept", "application/json")
	if token := TokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("store api unreachable", zap.String("path", req.URL.Path), zap.Error(err))
		return nil, &APIError{Code: 500, Message: FallbackMessage, Errors: []string{err.Error()}}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if hook := unauthorizedHookFrom(ctx); hook != nil {
			hook()
		}
		return nil, &APIError{Code: 401, Message: "Unauthorized"}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Code: 500, Message: FallbackMessage, Errors: []string{err.Error()}}
	}

	var env models.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, &APIError{Code: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return nil, &APIError{Code: 500, Message: FallbackMessage, Errors: []string{err.Error()}}
	}

	if !env.OK() {
		message := env.Message
		if message == "" {
			message = FallbackMessage
		}
		return nil, &APIError{Code: env.Code, Message: message, Errors: env.Errors}
	}
	return &env, nil
}

// Package supabase talks to a Supabase project over its REST, storage and auth admin APIs.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"audiobrew/config"
	"audiobrew/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	restPath    = "/rest/v1/"
	storagePath = "/storage/v1/object/"
	authPath    = "/auth/v1/admin/users/"

	preferMinimal = "return=minimal"

	defaultTimeout = 60 * time.Second
	maxErrorBody   = 2048
)

// APIError is a non-2xx answer from Supabase.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("supabase returned status %d", e.StatusCode)
	}

	return fmt.Sprintf("supabase returned status %d: %s", e.StatusCode, e.Body)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, statusCode int) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.StatusCode == statusCode
}

// Client is a thin authenticated HTTP client for one Supabase project.
type Client struct {
	baseURL    string
	serviceKey string
	bucket     string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientParams holds dependencies for Client, injected by Fx
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClient builds a client from the supabase config section. A missing
// section yields an unconfigured client whose calls fail with ErrStoreNotConfigured.
func NewClient(params ClientParams) *Client {
	cfg := params.Config.Supabase
	if cfg == nil {
		cfg = &config.SupabaseConfig{}
	}

	return newClient(cfg.URL, cfg.ServiceKey, cfg.Bucket, cfg.Timeout, params.Logger)
}

func newClient(baseURL, serviceKey, bucket string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if bucket == "" {
		bucket = "podcasts"
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		bucket:     bucket,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Configured reports whether both the project URL and the service key are set.
func (c *Client) Configured() bool {
	return c.baseURL != "" && c.serviceKey != ""
}

// Bucket returns the storage bucket used for audio artifacts.
func (c *Client) Bucket() string {
	return c.bucket
}

// BaseURL returns the project URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type request struct {
	method      string
	url         string
	query       url.Values
	body        any
	rawBody     []byte
	contentType string
	prefer      string
}

// do sends the request and decodes a JSON answer into out when out is non-nil.
func (c *Client) do(ctx context.Context, req request, out any) error {
	if !c.Configured() {
		return repository.ErrStoreNotConfigured
	}

	var body io.Reader
	contentType := req.contentType
	switch {
	case req.rawBody != nil:
		body = bytes.NewReader(req.rawBody)
	case req.body != nil:
		payload, err := json.Marshal(req.body)
		if err != nil {
			return errors.WithStack(err)
		}
		body = bytes.NewReader(payload)
		contentType = "application/json"
	}

	target := req.url
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return errors.WithStack(err)
	}
	httpReq.Header.Set("apikey", c.serviceKey)
	httpReq.Header.Set("Authorization", "Bearer "+c.serviceKey)
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if req.prefer != "" {
		httpReq.Header.Set("Prefer", req.prefer)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return errors.Wrapf(err, "supabase %s %s", req.method, req.url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode supabase response")
	}

	return nil
}

func (c *Client) tableURL(table string) string {
	return c.baseURL + restPath + table
}

func (c *Client) objectURL(path string) string {
	return c.baseURL + storagePath + c.bucket + "/" + path
}

func (c *Client) publicPrefix() string {
	return c.baseURL + storagePath + "public/" + c.bucket + "/"
}

func eq(value string) string {
	return "eq." + value
}

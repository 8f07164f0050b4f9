package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/Priyanshu7318/SHIELD/internal/client/models"
)

var ErrInvalidBaseURL = errors.New("invalid base URL")

// HTTPClient implements Client over HTTP/JSON.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
}

type Option func(*httpOptions)

type httpOptions struct {
	transport http.RoundTripper
}

// WithTransport sets the transport beneath the credential interceptor.
// It defaults to http.DefaultTransport.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *httpOptions) { o.transport = rt }
}

// NewHTTPClient builds a client for the API at baseURL. Every request it
// sends carries the token currently held by cred, if any.
func NewHTTPClient(baseURL string, cred *Credential, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}
	u.Path = strings.TrimRight(u.Path, "/")

	o := httpOptions{transport: http.DefaultTransport}
	for _, opt := range opts {
		opt(&o)
	}

	return &HTTPClient{
		baseURL: u,
		http:    &http.Client{Transport: &bearerTransport{base: o.transport, cred: cred}},
	}, nil
}

// BaseURL returns the API root the client was built with.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL.String()
}

func (c *HTTPClient) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	u.RawQuery = query.Encode()
	return u.String()
}

// do sends one request and decodes a 2xx JSON body into out (when non-nil).
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w: %w", method, path, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w: %w", method, path, ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newRemoteError(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", path, err)
	}
	return c.do(ctx, http.MethodPost, path, nil, bytes.NewReader(payload), "application/json", out)
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := c.postJSON(ctx, "/auth/login", models.LoginRequest{Username: username, Password: password}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.getJSON(ctx, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) Signup(ctx context.Context, username, email, password string) (*models.User, error) {
	var user models.User
	req := models.SignupRequest{Username: username, Email: email, Password: password}
	if err := c.postJSON(ctx, "/auth/signup", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) ChangePassword(ctx context.Context, current, next string) (*models.Message, error) {
	var msg models.Message
	req := models.ChangePasswordRequest{CurrentPassword: current, NewPassword: next}
	if err := c.postJSON(ctx, "/auth/change-password", req, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// CheckFile streams content as the multipart field "file" to /check_<kind>.
func (c *HTTPClient) CheckFile(ctx context.Context, kind models.MediaType, name string, content io.Reader) (*models.DetectionResult, error) {
	if !kind.IsFile() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMedia, kind)
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", filepath.Base(name))
		if err == nil {
			_, err = io.Copy(part, content)
		}
		if err == nil {
			err = mw.Close()
		}
		pw.CloseWithError(err)
	}()

	var result models.DetectionResult
	if err := c.do(ctx, http.MethodPost, "/check_"+string(kind), nil, pr, mw.FormDataContentType(), &result); err != nil {
		_ = pr.CloseWithError(err)
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) CheckText(ctx context.Context, text string) (*models.DetectionResult, error) {
	form := url.Values{"text": {text}}
	var result models.DetectionResult
	err := c.do(ctx, http.MethodPost, "/check_text", nil, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) RiskScore(ctx context.Context, confidences []float64) (*models.RiskReport, error) {
	var report models.RiskReport
	if err := c.postJSON(ctx, "/risk_score", models.RiskRequest{Confidences: confidences}, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *HTTPClient) Logs(ctx context.Context) ([]models.LogEntry, error) {
	var logs []models.LogEntry
	if err := c.getJSON(ctx, "/dashboard/logs", nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (c *HTTPClient) Stats(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats
	if err := c.getJSON(ctx, "/dashboard/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ChartData fetches sparse daily buckets. An empty mediaType means "All".
func (c *HTTPClient) ChartData(ctx context.Context, mediaType string) ([]models.ChartBucket, error) {
	if mediaType == "" {
		mediaType = "All"
	}
	var buckets []models.ChartBucket
	if err := c.getJSON(ctx, "/dashboard/chart-data", url.Values{"type": {mediaType}}, &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}

func (c *HTTPClient) SendFeedback(ctx context.Context, message string) (*models.Message, error) {
	var ack models.Message
	if err := c.postJSON(ctx, "/dashboard/feedback", models.FeedbackRequest{Message: message}, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.getJSON(ctx, "/", nil, nil)
}

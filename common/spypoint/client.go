package spypoint

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

const (
	pathLogin      = "/api/v3/user/login"
	pathCamerasAll = "/api/v3/camera/all"
	pathCamera     = "/api/v3/camera/"
	pathPhotos     = "/api/v3/photo/all"

	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:126.0) Gecko/20100101"

	// Photos past this date never exist; used as the listing window end.
	dateEndSentinel = "2100-01-01T00:00:00.000Z"

	connectTimeout = 15 * time.Second
	readTimeout    = 30 * time.Second
	totalTimeout   = 45 * time.Second
)

// APIError is the error body the vendor returns on non-2xx responses.
type APIError struct {
	HTTPStatus int    `json:"http_status"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("http_status %d, error %s", e.HTTPStatus, e.Message)
}

// Logger is the logging interface the client depends on
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
}

// Client is an authenticated HTTP client for the SpyPoint v3 API.
// Sessions are returned by Login and passed explicitly to every call.
type Client struct {
	host     string
	user     string
	password string
	http     *http.Client
	logger   Logger
}

// New creates a client for the given host (scheme included) and credentials.
// Timeouts are fixed: connect 15s, response header 30s, total 45s.
func New(host, user, password string, logger Logger) *Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: connectTimeout,
		}).DialContext,
		ResponseHeaderTimeout: readTimeout,
	}

	return &Client{
		host:     host,
		user:     user,
		password: password,
		http: &http.Client{
			Transport: transport,
			Timeout:   totalTimeout,
		},
		logger: logger,
	}
}

// Login authenticates with the configured credentials and returns a session.
func (c *Client) Login(ctx context.Context) (*Session, error) {
	req := Login{
		Username: c.user,
		Password: c.password,
	}

	var resp LoginResponse
	if err := c.send(ctx, nil, http.MethodPost, pathLogin, req, &resp); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	c.logger.Debug("logged in", "uuid", resp.UUID)

	return &Session{
		UUID:  resp.UUID,
		Token: resp.Token,
	}, nil
}

// Cameras lists all cameras on the account.
func (c *Client) Cameras(ctx context.Context, s *Session) ([]Camera, error) {
	var cameras []Camera
	if err := c.get(ctx, s, pathCamerasAll, &cameras); err != nil {
		return nil, fmt.Errorf("list cameras: %w", err)
	}

	return cameras, nil
}

// Camera fetches full detail for a single camera.
func (c *Client) Camera(ctx context.Context, s *Session, cameraID string) (Camera, error) {
	var camera Camera
	if err := c.get(ctx, s, pathCamera+cameraID, &camera); err != nil {
		return Camera{}, fmt.Errorf("get camera %s: %w", cameraID, err)
	}

	return camera, nil
}

// Photos lists the most recent photos for a camera, newest first.
func (c *Client) Photos(ctx context.Context, s *Session, cameraID string, limit int) ([]Photo, error) {
	req := PhotosRequest{
		Camera:     []string{cameraID},
		DateEnd:    dateEndSentinel,
		MediaTypes: []string{},
		Species:    []string{},
		Limit:      limit,
	}

	var resp PhotosResponse
	if err := c.send(ctx, s, http.MethodPost, pathPhotos, req, &resp); err != nil {
		return nil, fmt.Errorf("list photos for camera %s: %w", cameraID, err)
	}

	c.logger.Debug("photos listed", "camera_id", cameraID, "count", resp.CountPhotos)

	return resp.Photos, nil
}

// Download fetches raw image bytes from a media URL. The URL is presigned,
// so no bearer token is sent.
func (c *Client) Download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build download request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download image: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read image body: %w", err)
	}

	return data, nil
}

// get performs an authenticated GET and decodes the JSON response.
func (c *Client) get(ctx context.Context, s *Session, path string, out interface{}) error {
	return c.do(ctx, s, http.MethodGet, path, nil, out)
}

// send performs a request with a JSON body and decodes the JSON response.
// A nil session sends no bearer token (the login call).
func (c *Client) send(ctx context.Context, s *Session, method, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	return c.do(ctx, s, method, path, payload, out)
}

func (c *Client) do(ctx context.Context, s *Session, method, path string, body []byte, out interface{}) error {
	url := c.host + path

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s != nil {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.retrieveError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// retrieveError decodes the vendor's error body and tags it with the HTTP
// status code.
func (c *Client) retrieveError(resp *http.Response) error {
	apiErr := &APIError{}
	if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
		return fmt.Errorf("parse error response (status %d): %w", resp.StatusCode, err)
	}

	apiErr.HTTPStatus = resp.StatusCode
	return apiErr
}

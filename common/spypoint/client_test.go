package spypoint

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct{}

func (testLogger) Info(msg string, kv ...interface{})  {}
func (testLogger) Error(msg string, kv ...interface{}) {}
func (testLogger) Warn(msg string, kv ...interface{})  {}
func (testLogger) Debug(msg string, kv ...interface{}) {}

func TestLogin_ReturnsSession(t *testing.T) {
	var gotBody Login
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v3/user/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(LoginResponse{UUID: "uuid-1", Token: "tok-1"})
	}))
	defer srv.Close()

	c := New(srv.URL, "alice", "secret", testLogger{})
	session, err := c.Login(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "uuid-1", session.UUID)
	assert.Equal(t, "tok-1", session.Token)
	assert.Equal(t, "alice", gotBody.Username)
	assert.Equal(t, "secret", gotBody.Password)
}

func TestCameras_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v3/camera/all", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		json.NewEncoder(w).Encode([]Camera{{ID: "cam-1"}, {ID: "cam-2"}})
	}))
	defer srv.Close()

	c := New(srv.URL, "alice", "secret", testLogger{})
	cameras, err := c.Cameras(context.Background(), &Session{UUID: "uuid-1", Token: "tok-1"})
	require.NoError(t, err)
	require.Len(t, cameras, 2)
	assert.Equal(t, "cam-1", cameras[0].ID)
}

func TestCamera_FetchesDetailByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v3/camera/cam-7", r.URL.Path)
		json.NewEncoder(w).Encode(Camera{ID: "cam-7", Config: CameraConfig{Name: "ridge"}})
	}))
	defer srv.Close()

	c := New(srv.URL, "alice", "secret", testLogger{})
	camera, err := c.Camera(context.Background(), &Session{Token: "tok-1"}, "cam-7")
	require.NoError(t, err)
	assert.Equal(t, "ridge", camera.Config.Name)
}

func TestPhotos_RequestBody(t *testing.T) {
	var gotBody PhotosRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v3/photo/all", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(PhotosResponse{
			Photos:      []Photo{{ID: "p-1"}},
			CountPhotos: 1,
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "alice", "secret", testLogger{})
	photos, err := c.Photos(context.Background(), &Session{Token: "tok-1"}, "cam-1", 125)
	require.NoError(t, err)
	require.Len(t, photos, 1)

	assert.Equal(t, []string{"cam-1"}, gotBody.Camera)
	assert.Equal(t, "2100-01-01T00:00:00.000Z", gotBody.DateEnd)
	assert.Equal(t, 125, gotBody.Limit)
	// Empty filter arrays must be present, not null
	assert.NotNil(t, gotBody.MediaTypes)
	assert.NotNil(t, gotBody.Species)
}

func TestAPIError_DecodedFromErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{"error": "invalid token"})
	}))
	defer srv.Close()

	c := New(srv.URL, "alice", "secret", testLogger{})
	_, err := c.Cameras(context.Background(), &Session{Token: "stale"})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.HTTPStatus)
	assert.Equal(t, "invalid token", apiErr.Message)
}

func TestDownload_ReturnsBytesWithoutAuth(t *testing.T) {
	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write(payload)
	}))
	defer srv.Close()

	c := New(srv.URL, "alice", "secret", testLogger{})
	data, err := c.Download(context.Background(), srv.URL+"/img.jpg")
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestDownload_NonOKStatusFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, "alice", "secret", testLogger{})
	_, err := c.Download(context.Background(), srv.URL+"/missing.jpg")
	require.Error(t, err)
}

func TestMediaRef_URL(t *testing.T) {
	ref := MediaRef{Host: "cdn.example.com", Path: "a/b/c.jpg"}
	assert.Equal(t, "https://cdn.example.com/a/b/c.jpg", ref.URL())
}

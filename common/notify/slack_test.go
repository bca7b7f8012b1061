package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wildcat/spartan/common/logger"
)

func testLog() *logger.Logger {
	return logger.New("error", "text")
}

func TestError_PostsRedAttachment(t *testing.T) {
	var got Message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	n := New(srv.URL, testLog())
	n.Error(context.Background(), "Spartan Sync", "login failed: 401")

	assert.Equal(t, "login failed: 401", got.Text)
	require.Len(t, got.Attachments, 1)
	assert.Equal(t, "Spartan Sync API Error", got.Attachments[0].Title)
	assert.Equal(t, "#f00", got.Attachments[0].Color)
}

func TestSend_FencesMessage(t *testing.T) {
	var got Message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	n := New(srv.URL, testLog())
	n.Send(context.Background(), "run complete: 12 uploaded")

	assert.Equal(t, "```run complete: 12 uploaded```", got.Text)
	assert.Empty(t, got.Attachments)
}

func TestEmptyURL_IsNoOp(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	n := New("", testLog())
	n.Error(context.Background(), "Spartan Sync", "should not post")
	n.Send(context.Background(), "should not post")

	assert.False(t, called)
}

func TestPostFailure_IsSwallowed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	// Must not panic or propagate anything
	n := New(srv.URL, testLog())
	n.Error(context.Background(), "Spartan Sync", "rejected upstream")

	// Unreachable endpoint is also fine
	n2 := New("http://127.0.0.1:1", testLog())
	n2.Send(context.Background(), "no listener")
}

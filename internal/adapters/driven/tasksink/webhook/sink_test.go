package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lifeos-cli/internal/core/domain"
)

func TestNew_InvalidURL(t *testing.T) {
	for _, raw := range []string{"", "not a url", "ftp://example.com/hook", "http://"} {
		_, err := New(raw, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, raw)
	}
}

func TestSink_Send(t *testing.T) {
	var got domain.TaskPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	sink, err := New(server.URL, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "webhook", sink.Name())

	payload := domain.TaskPayload{Title: "[LifeOS] Water plants", Notes: "Context: Home\nPriority: Med", Due: "tomorrow"}
	require.NoError(t, sink.Send(context.Background(), payload))
	assert.Equal(t, payload, got)
}

func TestSink_Send_Errors(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		}))
		defer server.Close()

		sink, err := New(server.URL, time.Second)
		require.NoError(t, err)

		err = sink.Send(context.Background(), domain.TaskPayload{Title: "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("rate limited", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Retry-After", "7")
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		sink, err := New(server.URL, time.Second)
		require.NoError(t, err)

		err = sink.Send(context.Background(), domain.TaskPayload{Title: "x"})
		assert.ErrorIs(t, err, domain.ErrRateLimited)

		var limited *domain.RateLimitError
		require.ErrorAs(t, err, &limited)
		assert.Equal(t, 7*time.Second, limited.RetryAfter)
	})

	t.Run("unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		url := server.URL
		server.Close()

		sink, err := New(url, time.Second)
		require.NoError(t, err)
		assert.Error(t, sink.Send(context.Background(), domain.TaskPayload{Title: "x"}))
	})
}

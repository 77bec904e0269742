package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogJSON = `[{"title": "Magic in the Moonlight", "year": 2014, "duration": 5857856}]`

func newTestClient(opts ...Option) *Client {
	opts = append([]Option{WithRetryDelay(time.Millisecond)}, opts...)
	return NewClient(zerolog.Nop(), opts...)
}

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/movies.json", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "movies-test", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(catalogJSON))
	}))
	defer server.Close()

	client := newTestClient(WithUserAgent("movies-test"))
	body, err := client.Fetch(context.Background(), server.URL+"/movies.json")
	require.NoError(t, err)
	assert.JSONEq(t, catalogJSON, string(body))
}

func TestFetchRetries(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		maxRetries    int
		expectedCalls int32
	}{
		{"Server error is retried", http.StatusInternalServerError, 2, 3},
		{"Too many requests is retried", http.StatusTooManyRequests, 1, 2},
		{"Not found is not retried", http.StatusNotFound, 2, 1},
		{"Unauthorized is not retried", http.StatusUnauthorized, 2, 1},
		{"Retries disabled", http.StatusBadGateway, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := newTestClient(WithMaxRetries(tt.maxRetries))
			body, err := client.Fetch(context.Background(), server.URL+"/movies.json")
			require.Error(t, err)
			assert.Nil(t, body)
			assert.ErrorIs(t, err, ErrFetchFailed)

			var statusErr *StatusError
			require.True(t, errors.As(err, &statusErr))
			assert.Equal(t, tt.status, statusErr.StatusCode)
			assert.Equal(t, tt.expectedCalls, calls.Load())
		})
	}
}

func TestFetchRecoversAfterFailure(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(catalogJSON))
	}))
	defer server.Close()

	body, err := newTestClient().Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.JSONEq(t, catalogJSON, string(body))
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetchInvalidJSON(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	_, err := newTestClient().Fetch(context.Background(), server.URL)
	assert.ErrorIs(t, err, ErrInvalidJSON)
	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetchTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newTestClient(WithMaxRetries(1)).Fetch(context.Background(), url)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestFetchCanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(catalogJSON))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient().Fetch(ctx, server.URL)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestClientOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		client := NewClient(zerolog.Nop())
		assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
		assert.Equal(t, 2, client.maxRetries)
		assert.Equal(t, "movies", client.userAgent)
	})

	t.Run("with timeout", func(t *testing.T) {
		client := NewClient(zerolog.Nop(), WithTimeout(5*time.Second))
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("negative retries are ignored", func(t *testing.T) {
		client := NewClient(zerolog.Nop(), WithMaxRetries(-1))
		assert.Equal(t, 2, client.maxRetries)
	})

	t.Run("with custom http client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		client := NewClient(zerolog.Nop(), WithHTTPClient(customClient))
		assert.Equal(t, customClient, client.httpClient)
	})
}

func TestStatusErrorTemporary(t *testing.T) {
	assert.True(t, (&StatusError{StatusCode: 500}).Temporary())
	assert.True(t, (&StatusError{StatusCode: 503}).Temporary())
	assert.True(t, (&StatusError{StatusCode: 429}).Temporary())
	assert.False(t, (&StatusError{StatusCode: 404}).Temporary())
	assert.False(t, (&StatusError{StatusCode: 403}).Temporary())
}

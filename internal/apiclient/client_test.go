package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal/credentials"
)

func bearerOf(r *http.Request) string {
	return r.Header.Get("Authorization")
}

func TestDo_AttachesBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer valid-token", bearerOf(r))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	creds := credentials.NewMemStore()
	assert.NoError(t, creds.SetTokens("valid-token", "refresh-token"))
	client := New(srv.URL, creds, internal.NopLogger{})

	data, err := client.Do(context.Background(), http.MethodGet, "/things/", nil, nil)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(data))
}

func TestDo_RefreshesOnceAndReplays(t *testing.T) {
	var refreshCalls, resourceCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == RefreshPath {
			atomic.AddInt32(&refreshCalls, 1)
			var body map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "old-refresh", body["refresh"])
			json.NewEncoder(w).Encode(map[string]string{"access": "fresh", "refresh": "fresh-refresh"})
			return
		}
		atomic.AddInt32(&resourceCalls, 1)
		if bearerOf(r) != "Bearer fresh" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"id":1}`))
	}))
	defer srv.Close()

	creds := credentials.NewMemStore()
	assert.NoError(t, creds.SetTokens("stale", "old-refresh"))
	client := New(srv.URL, creds, internal.NopLogger{})

	data, err := client.Do(context.Background(), http.MethodGet, "/things/1/", nil, nil)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"id":1}`, string(data))
	assert.EqualValues(t, 1, refreshCalls)
	assert.EqualValues(t, 2, resourceCalls)

	// The rotated pair was persisted.
	assert.Equal(t, "fresh", creds.AccessToken())
	assert.Equal(t, "fresh-refresh", creds.RefreshToken())
}

func TestDo_FailedRefreshExpiresSession(t *testing.T) {
	var refreshCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == RefreshPath {
			atomic.AddInt32(&refreshCalls, 1)
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	expired := false
	creds := credentials.NewMemStore()
	assert.NoError(t, creds.SetTokens("stale", "dead-refresh"))
	client := New(srv.URL, creds, internal.NopLogger{},
		WithAuthExpiredHook(func() { expired = true }),
	)

	_, err := client.Do(context.Background(), http.MethodGet, "/things/", nil, nil)
	assert.True(t, errors.Is(err, internal.ErrUnauthorized))
	assert.EqualValues(t, 1, refreshCalls)
	assert.True(t, expired)
	assert.Empty(t, creds.AccessToken())
	assert.Empty(t, creds.RefreshToken())

	var se *StatusError
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusUnauthorized, se.Code)
}

func TestDo_NoRefreshTokenFailsFast(t *testing.T) {
	var requests int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	expired := false
	creds := credentials.NewMemStore()
	client := New(srv.URL, creds, internal.NopLogger{},
		WithAuthExpiredHook(func() { expired = true }),
	)

	_, err := client.Do(context.Background(), http.MethodGet, "/things/", nil, nil)
	assert.True(t, errors.Is(err, internal.ErrUnauthorized))
	assert.EqualValues(t, 1, requests)
	assert.True(t, expired)
}

func TestDo_RefreshPath401IsNotRetried(t *testing.T) {
	var requests int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	creds := credentials.NewMemStore()
	assert.NoError(t, creds.SetTokens("a", "r"))
	client := New(srv.URL, creds, internal.NopLogger{})

	_, err := client.Do(context.Background(), http.MethodPost, RefreshPath, map[string]string{"refresh": "r"}, nil)
	assert.True(t, errors.Is(err, internal.ErrUnauthorized))
	assert.EqualValues(t, 1, requests)
}

func TestDo_SecondUnauthorizedPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == RefreshPath {
			json.NewEncoder(w).Encode(map[string]string{"access": "fresh"})
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	creds := credentials.NewMemStore()
	assert.NoError(t, creds.SetTokens("stale", "refresh"))
	client := New(srv.URL, creds, internal.NopLogger{})

	_, err := client.Do(context.Background(), http.MethodGet, "/things/", nil, nil)
	assert.True(t, errors.Is(err, internal.ErrUnauthorized))
}

func TestGetJSON_DecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.URL.Query().Get("page"))
		w.Write([]byte(`{"count":1,"results":[{"id":3}]}`))
	}))
	defer srv.Close()

	client := New(srv.URL, credentials.NewMemStore(), internal.NopLogger{})

	var out internal.Page[internal.SleepRecord]
	q := map[string][]string{"page": {"7"}}
	assert.NoError(t, client.GetJSON(context.Background(), "/sleep-data/", q, &out))
	assert.Equal(t, 1, out.Count)
	assert.Equal(t, 3, out.Results[0].ID)
}

func TestMockMode_ShortCircuits(t *testing.T) {
	client := New("http://unreachable.invalid", credentials.NewMemStore(), internal.NopLogger{},
		WithMockMode(0),
	)
	data, err := client.Do(context.Background(), http.MethodGet, "/anything/", nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

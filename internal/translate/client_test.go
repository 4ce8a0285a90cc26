package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(ts *httptest.Server) *Client {
	c := NewClient("test-key", "translate-plus.p.rapidapi.com")
	c.BaseURL = ts.URL
	c.HTTP = ts.Client()
	return c
}

func TestTranslate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/translate", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-rapidapi-key"))
		assert.Equal(t, "translate-plus.p.rapidapi.com", r.Header.Get("x-rapidapi-host"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"translations":{"translation":"hola"}}`))
	}))
	defer ts.Close()

	out, err := newTestClient(ts).Translate(context.Background(), "hello", "en", "es")
	require.NoError(t, err)
	assert.Equal(t, "hola", out)
}

func TestTranslateErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer ts.Close()

	_, err := newTestClient(ts).Translate(context.Background(), "hello", "en", "es")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestTranslateMalformedResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts).Translate(context.Background(), "hello", "en", "es")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestTranslateMissingTranslation(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"translations":{}}`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts).Translate(context.Background(), "hello", "en", "es")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestTranslateTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // connection refused from here on

	_, err := newTestClient(ts).Translate(context.Background(), "hello", "en", "es")
	require.ErrorIs(t, err, ErrUnavailable)
}

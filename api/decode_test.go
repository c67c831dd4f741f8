package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsecoach/coachkit/domain"
)

// newFixtureBackend serves canned responses shaped like the coaching
// backend.
func newFixtureBackend() *httptest.Server {
	r := chi.NewRouter()

	r.Get("/api/v1/exercises", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success":true,
			"data":{"content":[{"id":"ex1","name":"Front Squat"}],"last":true}
		}`))
	})
	r.Get("/api/v1/private", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	r.Get("/api/v1/broken", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"message":"database unavailable"}`))
	})
	r.Get("/api/v1/rejected", func(w http.ResponseWriter, req *http.Request) {
		// 200 with success=false still counts as a server failure.
		_, _ = w.Write([]byte(`{"success":false,"message":"client limit reached"}`))
	})
	r.Get("/api/v1/empty", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/api/v1/garbled", func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(`{"success":`))
	})

	return httptest.NewServer(r)
}

func TestFetchEnvelopeSuccess(t *testing.T) {
	srv := newFixtureBackend()
	defer srv.Close()

	env, err := FetchEnvelope[Page[domain.Exercise]](context.Background(), srv.Client(), srv.URL+"/api/v1/exercises")
	require.NoError(t, err)
	require.True(t, env.HasData())
	require.Len(t, env.Data.Content, 1)
	assert.Equal(t, "Front Squat", env.Data.Content[0].Name)
}

func TestFetchEnvelopeUnauthorized(t *testing.T) {
	srv := newFixtureBackend()
	defer srv.Close()

	_, err := FetchEnvelope[Page[domain.Exercise]](context.Background(), srv.Client(), srv.URL+"/api/v1/private")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestFetchEnvelopeServerError(t *testing.T) {
	srv := newFixtureBackend()
	defer srv.Close()

	_, err := FetchEnvelope[Page[domain.Exercise]](context.Background(), srv.Client(), srv.URL+"/api/v1/broken")
	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusInternalServerError, serverErr.StatusCode)
	assert.Equal(t, "database unavailable", serverErr.Message)
}

func TestFetchEnvelopeSuccessFalse(t *testing.T) {
	srv := newFixtureBackend()
	defer srv.Close()

	_, err := FetchEnvelope[Page[domain.Exercise]](context.Background(), srv.Client(), srv.URL+"/api/v1/rejected")
	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, "client limit reached", serverErr.Message)
	assert.Equal(t, http.StatusOK, serverErr.StatusCode)
}

func TestFetchEnvelopeNoData(t *testing.T) {
	srv := newFixtureBackend()
	defer srv.Close()

	_, err := FetchEnvelope[Page[domain.Exercise]](context.Background(), srv.Client(), srv.URL+"/api/v1/empty")
	assert.ErrorIs(t, err, ErrNoData)
}

func TestFetchEnvelopeDecodingError(t *testing.T) {
	srv := newFixtureBackend()
	defer srv.Close()

	_, err := FetchEnvelope[Page[domain.Exercise]](context.Background(), srv.Client(), srv.URL+"/api/v1/garbled")
	var decodeErr *DecodingError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestFetchEnvelopeInvalidURL(t *testing.T) {
	for _, raw := range []string{"", "not a url", "/relative/only", "::bad::"} {
		_, err := FetchEnvelope[Page[domain.Exercise]](context.Background(), nil, raw)
		assert.ErrorIs(t, err, ErrInvalidURL, "url=%q", raw)
	}
}

func TestFetchEnvelopeNetworkError(t *testing.T) {
	srv := newFixtureBackend()
	url := srv.URL
	srv.Close() // nothing listening anymore

	_, err := FetchEnvelope[Page[domain.Exercise]](context.Background(), nil, url+"/api/v1/exercises")
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Error(t, errors.Unwrap(netErr))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "server error: boom", (&ServerError{Message: "boom"}).Error())
	assert.Equal(t, "server error (status 502)", (&ServerError{StatusCode: 502}).Error())
	assert.Contains(t, (&DecodingError{Err: errors.New("bad json")}).Error(), "bad json")
	assert.Contains(t, (&NetworkError{Err: errors.New("refused")}).Error(), "refused")
}

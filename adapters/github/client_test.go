package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devconnect/internal/config"
	"devconnect/pkg/apperror"
	"devconnect/pkg/logger"
)

func newTestClient(baseURL, token string) *Client {
	cfg := config.Config{}
	cfg.GitHub.APIBaseURL = baseURL
	cfg.GitHub.Token = token
	return NewClient(cfg, logger.NewNop())
}

func TestListRepos_RelaysRawBody(t *testing.T) {
	upstream := `[{"name":"devconnect","stargazers_count":42}]`

	var gotPath, gotQuery, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(upstream))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, "gh-token")
	body, err := client.ListRepos(context.Background(), "octocat")
	require.NoError(t, err)

	assert.Equal(t, upstream, string(body))
	assert.Equal(t, "/users/octocat/repos", gotPath)
	assert.Contains(t, gotQuery, "per_page=5")
	// The service credential is attached, not the caller's.
	assert.Equal(t, "Bearer gh-token", gotAuth)
}

func TestListRepos_NoTokenMeansNoAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, "")
	_, err := client.ListRepos(context.Background(), "octocat")
	require.NoError(t, err)
}

func TestListRepos_UnknownUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, "")
	_, err := client.ListRepos(context.Background(), "no-such-user")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestListRepos_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := newTestClient(srv.URL, "")
	_, err := client.ListRepos(context.Background(), "octocat")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrUpstream))
}

package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListRepos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat/repos", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))
		assert.Equal(t, "created:asc", r.URL.Query().Get("sort"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"name":"hello-world","html_url":"https://github.com/octocat/hello-world","description":"demo","stargazers_count":3,"watchers_count":3,"forks_count":1},
			{"name":"spoon-knife","html_url":"https://github.com/octocat/spoon-knife","stargazers_count":0,"watchers_count":0,"forks_count":0}
		]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", "")
	repos, err := client.ListRepos(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, "hello-world", repos[0].Name)
	assert.Equal(t, 3, repos[0].Stargazers)
	assert.Equal(t, "https://github.com/octocat/spoon-knife", repos[1].HTMLURL)
}

func TestClient_ListRepos_CredentialsForwarded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "my-id", r.URL.Query().Get("client_id"))
		assert.Equal(t, "my-secret", r.URL.Query().Get("client_secret"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "my-id", "my-secret")
	_, err := client.ListRepos(context.Background(), "octocat")
	require.NoError(t, err)
}

func TestClient_ListRepos_UpstreamNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", "")
	_, err := client.ListRepos(context.Background(), "no-such-user")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_ListRepos_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // 直接关掉，模拟上游不可达

	client := NewClient(srv.URL, "", "")
	_, err := client.ListRepos(context.Background(), "octocat")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

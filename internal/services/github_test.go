package services

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptstudio/internal/models"
)

func githubStub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/repos/acme/widgets/contents", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "main", r.URL.Query().Get("ref"))
		w.Write([]byte(`[
			{"name": "b.txt", "path": "b.txt", "type": "file"},
			{"name": "a.txt", "path": "a.txt", "type": "file"},
			{"name": "lib", "path": "lib", "type": "dir"}
		]`))
	})

	mux.HandleFunc("/repos/acme/widgets/contents/b.txt", func(w http.ResponseWriter, r *http.Request) {
		encoded := base64.StdEncoding.EncodeToString([]byte("hello world\n"))
		w.Write([]byte(`{"name": "b.txt", "path": "b.txt", "type": "file", "encoding": "base64", "content": "` + encoded + `"}`))
	})

	mux.HandleFunc("/repos/acme/widgets/contents/missing.txt", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "Not Found"}`))
	})

	return httptest.NewServer(mux)
}

func TestGithubClientListDirectoryKeepsUpstreamOrder(t *testing.T) {
	server := githubStub(t)
	defer server.Close()

	client := NewGithubClient(server.URL, "", time.Second)
	entries, err := client.ListDirectory(context.Background(), models.RepoRef{Owner: "acme", Repo: "widgets", Branch: "main"}, "")
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, "b.txt", entries[0].Name)
	assert.Equal(t, "a.txt", entries[1].Name)
	assert.Equal(t, "dir", entries[2].Type)
}

func TestGithubClientDecodesBase64Content(t *testing.T) {
	server := githubStub(t)
	defer server.Close()

	client := NewGithubClient(server.URL, "", time.Second)
	content, err := client.FileContent(context.Background(), models.RepoRef{Owner: "acme", Repo: "widgets", Branch: "main"}, "b.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", content)
}

func TestGithubClientSurfacesUpstreamStatus(t *testing.T) {
	server := githubStub(t)
	defer server.Close()

	client := NewGithubClient(server.URL, "", time.Second)
	_, err := client.FileContent(context.Background(), models.RepoRef{Owner: "acme", Repo: "widgets", Branch: "main"}, "missing.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestGithubClientSendsAuthHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewGithubClient(server.URL, "secret-token", time.Second)
	_, err := client.ListDirectory(context.Background(), models.RepoRef{Owner: "o", Repo: "r", Branch: "main"}, "")
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuth)
}

package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"promptstudio/internal/models"
)

const (
	githubJSONAccept    = "application/vnd.github+json"
	githubAPIVersion    = "2022-11-28"
	githubDefaultBranch = "main"
	githubUserAgent     = "promptstudio"
)

// RepoSource lists remote directories and reads raw file content. The tree
// builder depends on this interface so tests can substitute a fake host.
type RepoSource interface {
	ListDirectory(ctx context.Context, ref models.RepoRef, path string) ([]models.RepoEntry, error)
	FileContent(ctx context.Context, ref models.RepoRef, path string) (string, error)
}

// GithubClient talks to the GitHub contents API.
type GithubClient struct {
	client  *http.Client
	apiBase string
	token   string
}

// NewGithubClient creates a client for the given API base. An empty token
// leaves requests unauthenticated (lower rate limits, public repos only).
func NewGithubClient(apiBase, token string, timeout time.Duration) *GithubClient {
	if apiBase == "" {
		apiBase = "https://api.github.com"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &GithubClient{
		client:  &http.Client{Timeout: timeout},
		apiBase: strings.TrimRight(apiBase, "/"),
		token:   token,
	}
}

// apiContent is one element of a contents API response.
type apiContent struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Type        string `json:"type"`
	Content     string `json:"content"`
	Encoding    string `json:"encoding"`
	DownloadURL string `json:"download_url"`
}

// ListDirectory returns the entries at path in upstream listing order.
func (g *GithubClient) ListDirectory(ctx context.Context, ref models.RepoRef, path string) ([]models.RepoEntry, error) {
	body, err := g.get(ctx, g.contentsURL(ref, path))
	if err != nil {
		return nil, err
	}

	var payload []apiContent
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode directory listing for %q: %w", path, err)
	}

	entries := make([]models.RepoEntry, 0, len(payload))
	for _, item := range payload {
		entries = append(entries, models.RepoEntry{
			Name: item.Name,
			Path: item.Path,
			Type: item.Type,
		})
	}
	return entries, nil
}

// FileContent returns the decoded content of a single file.
func (g *GithubClient) FileContent(ctx context.Context, ref models.RepoRef, path string) (string, error) {
	body, err := g.get(ctx, g.contentsURL(ref, path))
	if err != nil {
		return "", err
	}

	var item apiContent
	if err := json.Unmarshal(body, &item); err != nil {
		return "", fmt.Errorf("decode file payload for %q: %w", path, err)
	}

	switch item.Encoding {
	case "base64":
		raw := strings.ReplaceAll(item.Content, "\n", "")
		decoded, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			return "", fmt.Errorf("decode content for %q: %w", path, err)
		}
		return string(decoded), nil
	case "", "none":
		// Large files come back without inline content; fall through to
		// the raw download URL.
		if item.Content != "" {
			return item.Content, nil
		}
		if item.DownloadURL != "" {
			return g.download(ctx, item.DownloadURL)
		}
		return "", nil
	default:
		return "", fmt.Errorf("unsupported encoding %q for %q", item.Encoding, path)
	}
}

func (g *GithubClient) contentsURL(ref models.RepoRef, path string) string {
	branch := ref.Branch
	if branch == "" {
		branch = githubDefaultBranch
	}

	escaped := ""
	if path != "" {
		segments := strings.Split(path, "/")
		for i, segment := range segments {
			segments[i] = url.PathEscape(segment)
		}
		escaped = "/" + strings.Join(segments, "/")
	}

	return fmt.Sprintf("%s/repos/%s/%s/contents%s?ref=%s",
		g.apiBase, url.PathEscape(ref.Owner), url.PathEscape(ref.Repo), escaped, url.QueryEscape(branch))
}

func (g *GithubClient) get(ctx context.Context, apiURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", githubJSONAccept)
	req.Header.Set("User-Agent", githubUserAgent)
	req.Header.Set("X-GitHub-Api-Version", githubAPIVersion)
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 8*1024))
		return nil, fmt.Errorf("unexpected status %d from %s: %s", resp.StatusCode, apiURL, string(snippet))
	}

	return io.ReadAll(resp.Body)
}

func (g *GithubClient) download(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", githubUserAgent)
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d from %s", resp.StatusCode, rawURL)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

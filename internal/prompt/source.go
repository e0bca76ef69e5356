package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

var ErrNotFound = errors.New("prompt: document not found")

// Source retrieves a named text document.
type Source interface {
	Fetch(ctx context.Context, name string) (string, error)
}

type DirSource struct {
	fsys fs.FS
}

func NewDirSource(dir string) DirSource {
	return DirSource{fsys: os.DirFS(dir)}
}

func NewFSSource(fsys fs.FS) DirSource {
	return DirSource{fsys: fsys}
}

func (s DirSource) Fetch(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	raw, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return "", err
	}
	return string(raw), nil
}

// HTTPSource fetches documents relative to a base URL.
type HTTPSource struct {
	base   *url.URL
	client *http.Client
}

func NewHTTPSource(baseURL string, timeout time.Duration) (*HTTPSource, error) {
	raw := strings.TrimSpace(baseURL)
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("prompt: parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("prompt: base url must be absolute: %q", baseURL)
	}
	return &HTTPSource{base: base, client: &http.Client{Timeout: timeout}}, nil
}

func (s *HTTPSource) Close() {
	s.client.CloseIdleConnections()
}

func (s *HTTPSource) Fetch(ctx context.Context, name string) (string, error) {
	ref, err := url.Parse(url.PathEscape(name))
	if err != nil {
		return "", fmt.Errorf("prompt: bad document name %q: %w", name, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.base.ResolveReference(ref).String(), nil)
	if err != nil {
		return "", err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("prompt: fetch %s: %w", name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("%w: %s (status %d)", ErrNotFound, name, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("prompt: read %s: %w", name, err)
	}
	return string(body), nil
}

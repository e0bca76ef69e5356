package prompt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDirSourceReadsFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pm_prompt.md"), []byte("pm body"), 0o644))

	src := NewDirSource(dir)
	text, err := src.Fetch(context.Background(), "pm_prompt.md")
	require.NoError(t, err)
	require.Equal(t, "pm body", text)

	_, err = src.Fetch(context.Background(), "missing.md")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = src.Fetch(context.Background(), "../escape.md")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPSourceFetchesRelativeToBase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/prompts/co-ceo_prompt.md" {
			_, _ = w.Write([]byte("hello"))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	src, err := NewHTTPSource(srv.URL+"/prompts", time.Second)
	require.NoError(t, err)
	defer src.Close()

	text, err := src.Fetch(context.Background(), "co-ceo_prompt.md")
	require.NoError(t, err)
	require.Equal(t, "hello", text)

	_, err = src.Fetch(context.Background(), "pm_prompt.md")
	require.ErrorIs(t, err, ErrNotFound)
	require.Contains(t, err.Error(), "pm_prompt.md")
}

func TestNewHTTPSourceRejectsRelativeURL(t *testing.T) {
	_, err := NewHTTPSource("prompts/", time.Second)
	require.Error(t, err)
}

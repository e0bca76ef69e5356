package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sandeepkv93/vaultos/internal/model"
)

type FileBackend struct {
	path string
}

func NewFileBackend(path string) (*FileBackend, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, fmt.Errorf("storage: file backend path is required")
	}
	return &FileBackend{path: trimmed}, nil
}

func (b *FileBackend) Name() string { return "file" }

func (b *FileBackend) Path() string { return b.path }

func (b *FileBackend) Load(_ context.Context) (model.AppState, error) {
	raw, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.AppState{}, ErrNotFound
		}
		return model.AppState{}, err
	}
	if strings.TrimSpace(string(raw)) == "" {
		return model.AppState{}, ErrNotFound
	}
	return decodeState(raw)
}

func (b *FileBackend) Save(_ context.Context, state model.AppState) error {
	dir := filepath.Dir(b.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	payload, err := encodeState(state)
	if err != nil {
		return err
	}
	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, b.path)
}

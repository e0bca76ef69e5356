package app

import (
	"context"
	"fmt"
	"io"

	"github.com/sandeepkv93/vaultos/internal/config"
	"github.com/sandeepkv93/vaultos/internal/prompt"
	"github.com/sandeepkv93/vaultos/internal/storage"
	"go.uber.org/zap"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

var nopCloser = closerFunc(func() error { return nil })

// OpenBackend builds the state backend selected by cfg.
func OpenBackend(ctx context.Context, cfg config.Config) (storage.StateBackend, io.Closer, error) {
	switch cfg.Backend.Kind {
	case config.BackendLocal:
		b, err := storage.OpenSQLite(cfg.Backend.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return b, b, nil
	case config.BackendFile:
		b, err := storage.NewFileBackend(cfg.Backend.FilePath)
		if err != nil {
			return nil, nil, err
		}
		return b, nopCloser, nil
	case config.BackendRemote:
		r := cfg.Backend.Remote
		switch r.Provider {
		case config.ProviderRedis:
			client := storage.NewRedisClient(r.RedisAddr, r.RedisPassword, r.RedisDB)
			return storage.NewRedisBackend(client, r.Collection, r.Document), client, nil
		case config.ProviderS3:
			client, err := storage.NewS3Client(ctx, r.S3Region)
			if err != nil {
				return nil, nil, err
			}
			return storage.NewS3Backend(client, r.Collection, r.Document), nopCloser, nil
		}
		return nil, nil, fmt.Errorf("%w: unknown remote provider %q", config.ErrInvalidConfig, r.Provider)
	default:
		return nil, nil, fmt.Errorf("%w: unknown backend kind %q", config.ErrInvalidConfig, cfg.Backend.Kind)
	}
}

func OpenSource(cfg config.Config) (prompt.Source, io.Closer, error) {
	if cfg.Templates.BaseURL != "" {
		timeout, err := cfg.HTTPTimeout()
		if err != nil {
			return nil, nil, err
		}
		src, err := prompt.NewHTTPSource(cfg.Templates.BaseURL, timeout)
		if err != nil {
			return nil, nil, err
		}
		return src, closerFunc(func() error { src.Close(); return nil }), nil
	}
	return prompt.NewDirSource(cfg.Templates.Dir), nopCloser, nil
}

// Open wires a Workspace from cfg. The returned closer releases the backend
// and template source.
func Open(ctx context.Context, cfg config.Config, clip prompt.Clipboard, logger *zap.Logger) (*Workspace, io.Closer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	backend, backendCloser, err := OpenBackend(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	source, sourceCloser, err := OpenSource(cfg)
	if err != nil {
		_ = backendCloser.Close()
		return nil, nil, err
	}
	ws := &Workspace{
		Store:     storage.NewStore(backend, logger),
		Assembler: prompt.NewAssembler(source, logger),
		Clipboard: clip,
		Logger:    logger.Named("workspace"),
	}
	closer := closerFunc(func() error {
		sourceCloser.Close()
		return backendCloser.Close()
	})
	logger.Info("workspace opened",
		zap.String("backend", backend.Name()),
		zap.String("templates", templateLocation(cfg)),
	)
	return ws, closer, nil
}

func templateLocation(cfg config.Config) string {
	if cfg.Templates.BaseURL != "" {
		return cfg.Templates.BaseURL
	}
	return cfg.Templates.Dir
}

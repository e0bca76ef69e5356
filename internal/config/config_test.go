package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	require.Equal(t, BackendLocal, cfg.Backend.Kind)
	require.Equal(t, "vaultos", cfg.Backend.Remote.Collection)
	require.Equal(t, "state", cfg.Backend.Remote.Document)
	require.True(t, cfg.UI.Clipboard)
	require.NoError(t, cfg.Validate())
}

func TestLoadYAMLOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vaultos.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
backend:
  kind: remote
  remote:
    provider: s3
    collection: team-vault
    s3_region: ap-northeast-2
templates:
  base_url: https://example.com/prompts/
logging:
  level: debug
`), 0o644))

	cfg, err := Load(path, true)
	require.NoError(t, err)
	require.Equal(t, BackendRemote, cfg.Backend.Kind)
	require.Equal(t, ProviderS3, cfg.Backend.Remote.Provider)
	require.Equal(t, "team-vault", cfg.Backend.Remote.Collection)
	require.Equal(t, "state", cfg.Backend.Remote.Document)
	require.Equal(t, "ap-northeast-2", cfg.Backend.Remote.S3Region)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, ".vaultos/state.db", cfg.Backend.SQLitePath)
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	cfg, err := Load(missing, false)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	_, err = Load(missing, true)
	require.Error(t, err)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("VAULTOS_BACKEND", "FILE")
	t.Setenv("VAULTOS_STATE_FILE", "state/custom.json")
	t.Setenv("VAULTOS_REDIS_DB", "3")
	t.Setenv("VAULTOS_CLIPBOARD", "off")
	t.Setenv("VAULTOS_DESKTOP_NOTIFICATIONS", "yes")
	t.Setenv("VAULTOS_HTTP_TIMEOUT", "2s")

	cfg := FromEnv(Default())
	require.Equal(t, BackendFile, cfg.Backend.Kind)
	require.Equal(t, "state/custom.json", cfg.Backend.FilePath)
	require.Equal(t, 3, cfg.Backend.Remote.RedisDB)
	require.False(t, cfg.UI.Clipboard)
	require.True(t, cfg.UI.DesktopNotifications)
	d, err := cfg.HTTPTimeout()
	require.NoError(t, err)
	require.Equal(t, 2*time.Second, d)
}

func TestFromEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("VAULTOS_REDIS_DB", "many")
	t.Setenv("VAULTOS_CLIPBOARD", "maybe")
	cfg := FromEnv(Default())
	require.Equal(t, 0, cfg.Backend.Remote.RedisDB)
	require.True(t, cfg.UI.Clipboard)
}

func TestValidateRejectsUnknownKinds(t *testing.T) {
	cfg := Default()
	cfg.Backend.Kind = "cloud"
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = Default()
	cfg.Backend.Kind = BackendRemote
	cfg.Backend.Remote.Provider = "mongo"
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = Default()
	cfg.Templates.HTTPTimeout = "soon"
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

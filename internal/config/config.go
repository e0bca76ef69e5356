package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("config: invalid")

type BackendKind string

const (
	BackendLocal  BackendKind = "local"
	BackendFile   BackendKind = "file"
	BackendRemote BackendKind = "remote"
)

type RemoteProvider string

const (
	ProviderRedis RemoteProvider = "redis"
	ProviderS3    RemoteProvider = "s3"
)

const DefaultConfigFile = "vaultos.yaml"

type Config struct {
	Backend   BackendConfig   `yaml:"backend"`
	Templates TemplatesConfig `yaml:"templates"`
	Logging   LoggingConfig   `yaml:"logging"`
	UI        UIConfig        `yaml:"ui"`
}

type BackendConfig struct {
	Kind       BackendKind  `yaml:"kind"`
	SQLitePath string       `yaml:"sqlite_path"`
	FilePath   string       `yaml:"file_path"`
	Remote     RemoteConfig `yaml:"remote"`
}

// RemoteConfig names the remote document by collection and document id.
type RemoteConfig struct {
	Provider      RemoteProvider `yaml:"provider"`
	Collection    string         `yaml:"collection"`
	Document      string         `yaml:"document"`
	RedisAddr     string         `yaml:"redis_addr"`
	RedisPassword string         `yaml:"redis_password"`
	RedisDB       int            `yaml:"redis_db"`
	S3Region      string         `yaml:"s3_region"`
}

type TemplatesConfig struct {
	Dir         string `yaml:"dir"`
	BaseURL     string `yaml:"base_url"`
	HTTPTimeout string `yaml:"http_timeout"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type UIConfig struct {
	Clipboard            bool `yaml:"clipboard"`
	DesktopNotifications bool `yaml:"desktop_notifications"`
}

func Default() Config {
	return Config{
		Backend: BackendConfig{
			Kind:       BackendLocal,
			SQLitePath: ".vaultos/state.db",
			FilePath:   ".vaultos/state.json",
			Remote: RemoteConfig{
				Provider:   ProviderRedis,
				Collection: "vaultos",
				Document:   "state",
				RedisAddr:  "localhost:6379",
			},
		},
		Templates: TemplatesConfig{
			Dir:         ".",
			HTTPTimeout: "10s",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		UI: UIConfig{
			Clipboard: true,
		},
	}
}

// Load reads path over the defaults. A missing file at the default location
// is not an error; an explicitly named file must exist.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func FromEnv(base Config) Config {
	cfg := base
	if v, ok := getEnvString("VAULTOS_BACKEND"); ok {
		cfg.Backend.Kind = BackendKind(strings.ToLower(v))
	}
	if v, ok := getEnvString("VAULTOS_SQLITE_PATH"); ok {
		cfg.Backend.SQLitePath = v
	}
	if v, ok := getEnvString("VAULTOS_STATE_FILE"); ok {
		cfg.Backend.FilePath = v
	}
	if v, ok := getEnvString("VAULTOS_REMOTE_PROVIDER"); ok {
		cfg.Backend.Remote.Provider = RemoteProvider(strings.ToLower(v))
	}
	if v, ok := getEnvString("VAULTOS_REMOTE_COLLECTION"); ok {
		cfg.Backend.Remote.Collection = v
	}
	if v, ok := getEnvString("VAULTOS_REMOTE_DOCUMENT"); ok {
		cfg.Backend.Remote.Document = v
	}
	if v, ok := getEnvString("VAULTOS_REDIS_ADDR"); ok {
		cfg.Backend.Remote.RedisAddr = v
	}
	if v, ok := getEnvString("VAULTOS_REDIS_PASSWORD"); ok {
		cfg.Backend.Remote.RedisPassword = v
	}
	if v, ok := getEnvInt("VAULTOS_REDIS_DB"); ok && v >= 0 {
		cfg.Backend.Remote.RedisDB = v
	}
	if v, ok := getEnvString("VAULTOS_S3_REGION"); ok {
		cfg.Backend.Remote.S3Region = v
	}
	if v, ok := getEnvString("VAULTOS_TEMPLATES_DIR"); ok {
		cfg.Templates.Dir = v
	}
	if v, ok := getEnvString("VAULTOS_TEMPLATES_URL"); ok {
		cfg.Templates.BaseURL = v
	}
	if v, ok := getEnvString("VAULTOS_HTTP_TIMEOUT"); ok {
		cfg.Templates.HTTPTimeout = v
	}
	if v, ok := getEnvString("VAULTOS_LOG_LEVEL"); ok {
		cfg.Logging.Level = v
	}
	if v, ok := getEnvString("VAULTOS_LOG_FILE"); ok {
		cfg.Logging.File = v
	}
	if v, ok := getEnvBool("VAULTOS_CLIPBOARD"); ok {
		cfg.UI.Clipboard = v
	}
	if v, ok := getEnvBool("VAULTOS_DESKTOP_NOTIFICATIONS"); ok {
		cfg.UI.DesktopNotifications = v
	}
	return cfg
}

func (c Config) Validate() error {
	switch c.Backend.Kind {
	case BackendLocal:
		if strings.TrimSpace(c.Backend.SQLitePath) == "" {
			return fmt.Errorf("%w: backend.sqlite_path is required", ErrInvalidConfig)
		}
	case BackendFile:
		if strings.TrimSpace(c.Backend.FilePath) == "" {
			return fmt.Errorf("%w: backend.file_path is required", ErrInvalidConfig)
		}
	case BackendRemote:
		r := c.Backend.Remote
		if strings.TrimSpace(r.Collection) == "" || strings.TrimSpace(r.Document) == "" {
			return fmt.Errorf("%w: remote collection and document are required", ErrInvalidConfig)
		}
		switch r.Provider {
		case ProviderRedis, ProviderS3:
		default:
			return fmt.Errorf("%w: unknown remote provider %q", ErrInvalidConfig, r.Provider)
		}
	default:
		return fmt.Errorf("%w: unknown backend kind %q", ErrInvalidConfig, c.Backend.Kind)
	}
	if _, err := c.HTTPTimeout(); err != nil {
		return err
	}
	return nil
}

func (c Config) HTTPTimeout() (time.Duration, error) {
	raw := strings.TrimSpace(c.Templates.HTTPTimeout)
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: templates.http_timeout %q", ErrInvalidConfig, raw)
	}
	return d, nil
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw, ok := getEnvString(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw, ok := getEnvString(name)
	if !ok {
		return false, false
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}

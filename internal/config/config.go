package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	KeyAPIBaseURL        = "api.base_url"
	KeyAPIAuthURL        = "api.auth_url"
	KeyAPIHealthTimeout  = "api.health_timeout"
	KeyAPIRequestTimeout = "api.request_timeout"
	KeyMonitorInterval   = "monitor.interval"
	KeySessionMaxAge     = "session.max_age"
	KeyStorageDir        = "storage.dir"
	KeyStorageBackend    = "storage.backend"
	KeyCachePath         = "cache.path"
	KeyLogLevel          = "log.level"
	KeyOffline           = "offline"
	KeyOutputJSON        = "output.json"

	envPrefix  = "RF"
	configDir  = ".reparafacil"
	configName = "config"
	configType = "toml"

	DefaultBaseURL = "http://localhost:8081/reparafacil-api/api/v1/reparaciones"
	DefaultAuthURL = "http://localhost:8081/reparafacil-api/api/v1/auth"

	// StorageBackendFile keeps the session record under storage.dir.
	StorageBackendFile = "file"
	// StorageBackendPass keeps it in the pass password store and falls back
	// to storage.dir when pass is unusable.
	StorageBackendPass = "pass"
)

// Config is the resolved runtime configuration.
type Config struct {
	API     APIConfig
	Monitor MonitorConfig
	Session SessionConfig
	Storage StorageConfig
	Log     LogConfig
	Offline bool
	JSON    bool
}

type APIConfig struct {
	BaseURL        string
	AuthURL        string
	HealthTimeout  time.Duration
	RequestTimeout time.Duration
}

type MonitorConfig struct {
	Interval time.Duration
}

type SessionConfig struct {
	MaxAge time.Duration
}

type StorageConfig struct {
	Backend   string
	Dir       string
	CachePath string
}

type LogConfig struct {
	Level string
}

type Options struct {
	// HomeDir overrides the user home directory.
	HomeDir string
	// EnvFiles are loaded with godotenv before the environment is read.
	// Defaults to ".env" in the working directory; missing files are skipped.
	EnvFiles []string
}

// New builds a viper instance with defaults, the optional config file at
// ~/.reparafacil/config.toml and RF_* environment overrides.
func New(opts Options) (*viper.Viper, error) {
	if err := loadEnvFiles(opts.EnvFiles); err != nil {
		return nil, err
	}

	homeDir := opts.HomeDir
	if homeDir == "" {
		var err error
		homeDir, err = os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
	}

	baseDir := filepath.Join(homeDir, configDir)

	v := viper.New()
	v.SetDefault(KeyAPIBaseURL, DefaultBaseURL)
	v.SetDefault(KeyAPIAuthURL, DefaultAuthURL)
	v.SetDefault(KeyAPIHealthTimeout, 5*time.Second)
	v.SetDefault(KeyAPIRequestTimeout, 10*time.Second)
	v.SetDefault(KeyMonitorInterval, 30*time.Second)
	v.SetDefault(KeySessionMaxAge, 24*time.Hour)
	v.SetDefault(KeyStorageDir, baseDir)
	v.SetDefault(KeyStorageBackend, StorageBackendFile)
	v.SetDefault(KeyCachePath, filepath.Join(baseDir, "tickets.toml"))
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyOffline, false)
	v.SetDefault(KeyOutputJSON, false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(baseDir)

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return v, nil
}

// Load resolves and validates the typed configuration from v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		API: APIConfig{
			BaseURL:        strings.TrimRight(strings.TrimSpace(v.GetString(KeyAPIBaseURL)), "/"),
			AuthURL:        strings.TrimRight(strings.TrimSpace(v.GetString(KeyAPIAuthURL)), "/"),
			HealthTimeout:  v.GetDuration(KeyAPIHealthTimeout),
			RequestTimeout: v.GetDuration(KeyAPIRequestTimeout),
		},
		Monitor: MonitorConfig{Interval: v.GetDuration(KeyMonitorInterval)},
		Session: SessionConfig{MaxAge: v.GetDuration(KeySessionMaxAge)},
		Storage: StorageConfig{
			Backend:   strings.ToLower(strings.TrimSpace(v.GetString(KeyStorageBackend))),
			Dir:       v.GetString(KeyStorageDir),
			CachePath: v.GetString(KeyCachePath),
		},
		Log:     LogConfig{Level: strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel)))},
		Offline: v.GetBool(KeyOffline),
		JSON:    v.GetBool(KeyOutputJSON),
	}

	if cfg.API.BaseURL == "" {
		return Config{}, fmt.Errorf("%s is empty", KeyAPIBaseURL)
	}
	if cfg.API.AuthURL == "" {
		return Config{}, fmt.Errorf("%s is empty", KeyAPIAuthURL)
	}
	for key, value := range map[string]time.Duration{
		KeyAPIHealthTimeout:  cfg.API.HealthTimeout,
		KeyAPIRequestTimeout: cfg.API.RequestTimeout,
		KeyMonitorInterval:   cfg.Monitor.Interval,
		KeySessionMaxAge:     cfg.Session.MaxAge,
	} {
		if value <= 0 {
			return Config{}, fmt.Errorf("%s must be positive, got %s", key, value)
		}
	}
	if strings.TrimSpace(cfg.Storage.Dir) == "" {
		return Config{}, fmt.Errorf("%s is empty", KeyStorageDir)
	}
	switch cfg.Storage.Backend {
	case StorageBackendFile, StorageBackendPass:
	default:
		return Config{}, fmt.Errorf("%s must be %q or %q, got %q", KeyStorageBackend, StorageBackendFile, StorageBackendPass, cfg.Storage.Backend)
	}

	return cfg, nil
}

func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("stat env file %s: %w", file, err)
		}
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("load env file %s: %w", file, err)
		}
	}

	return nil
}

// Package config reads ytcatalog settings from defaults, an optional TOML
// file, a .env file and the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"ewintr.nl/ytcatalog/cache"
	"ewintr.nl/ytcatalog/process"
	"ewintr.nl/ytcatalog/storage"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	FormatText = "text"
	FormatJSON = "json"
)

type Config struct {
	APIPort          int
	StorageDriver    string
	Postgres         storage.PostgresInfo
	SQLitePath       string
	YoutubeAPIKey    string
	CatalogURL       string
	CacheSize        int
	KeywordsFile     string
	DifficultyPolicy string
	LogLevel         string
	LogFormat        string

	ConfigFileUsed string
}

// env maps viper keys onto the environment variables that set them.
var env = map[string]string{
	"api_port":          "API_PORT",
	"storage_driver":    "STORAGE_DRIVER",
	"postgres_host":     "POSTGRES_HOST",
	"postgres_port":     "POSTGRES_PORT",
	"postgres_user":     "POSTGRES_USER",
	"postgres_password": "POSTGRES_PASSWORD",
	"postgres_db":       "POSTGRES_DB",
	"sqlite_path":       "SQLITE_PATH",
	"youtube_api_key":   "YOUTUBE_API_KEY",
	"catalog_url":       "CATALOG_URL",
	"cache_size":        "CACHE_SIZE",
	"keywords_file":     "KEYWORDS_FILE",
	"difficulty_policy": "DIFFICULTY_POLICY",
	"log_level":         "LOG_LEVEL",
	"log_format":        "LOG_FORMAT",
}

func defaultSQLitePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "ytcatalog.db"
	}
	return filepath.Join(dir, "ytcatalog", "ytcatalog.db")
}

// Load reads the configuration. configFile overrides the search for
// ytcatalog.toml when not empty; a missing file in the search path is fine,
// a missing explicit file is not.
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("api_port", 8080)
	v.SetDefault("storage_driver", DriverPostgres)
	v.SetDefault("postgres_host", "localhost")
	v.SetDefault("postgres_port", "5432")
	v.SetDefault("postgres_user", "ytcatalog")
	v.SetDefault("postgres_password", "ytcatalog")
	v.SetDefault("postgres_db", "ytcatalog")
	v.SetDefault("sqlite_path", defaultSQLitePath())
	v.SetDefault("youtube_api_key", "")
	v.SetDefault("catalog_url", "http://localhost:8080")
	v.SetDefault("cache_size", cache.DefaultSize)
	v.SetDefault("keywords_file", "")
	v.SetDefault("difficulty_policy", process.PolicyFixed)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", FormatText)

	for key, name := range env {
		if err := v.BindEnv(key, name); err != nil {
			return nil, fmt.Errorf("bind %s: %w", name, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("ytcatalog")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "ytcatalog"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	conf := &Config{
		APIPort:       v.GetInt("api_port"),
		StorageDriver: strings.ToLower(strings.TrimSpace(v.GetString("storage_driver"))),
		Postgres: storage.PostgresInfo{
			Host:     v.GetString("postgres_host"),
			Port:     v.GetString("postgres_port"),
			User:     v.GetString("postgres_user"),
			Password: v.GetString("postgres_password"),
			Database: v.GetString("postgres_db"),
		},
		SQLitePath:       v.GetString("sqlite_path"),
		YoutubeAPIKey:    v.GetString("youtube_api_key"),
		CatalogURL:       v.GetString("catalog_url"),
		CacheSize:        v.GetInt("cache_size"),
		KeywordsFile:     v.GetString("keywords_file"),
		DifficultyPolicy: strings.ToLower(strings.TrimSpace(v.GetString("difficulty_policy"))),
		LogLevel:         strings.ToLower(strings.TrimSpace(v.GetString("log_level"))),
		LogFormat:        strings.ToLower(strings.TrimSpace(v.GetString("log_format"))),
		ConfigFileUsed:   v.ConfigFileUsed(),
	}

	return conf, conf.Validate()
}

func (c *Config) Validate() error {
	if c.APIPort <= 0 || c.APIPort > 65535 {
		return fmt.Errorf("invalid API_PORT %d", c.APIPort)
	}
	switch c.StorageDriver {
	case DriverPostgres:
		if _, err := strconv.Atoi(c.Postgres.Port); err != nil {
			return fmt.Errorf("invalid POSTGRES_PORT %q", c.Postgres.Port)
		}
	case DriverSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("invalid STORAGE_DRIVER %q, must be %s or %s", c.StorageDriver, DriverPostgres, DriverSQLite)
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("invalid CACHE_SIZE %d", c.CacheSize)
	}
	if _, err := process.NewDifficultyPolicy(c.DifficultyPolicy); err != nil {
		return err
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.LogFormat != FormatText && c.LogFormat != FormatJSON {
		return fmt.Errorf("invalid LOG_FORMAT %q, must be %s or %s", c.LogFormat, FormatText, FormatJSON)
	}

	return nil
}

func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
	return level, nil
}

// NewLogger builds the logger described by the log settings. Validate must
// have passed.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, _ := ParseLevel(c.LogLevel)
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

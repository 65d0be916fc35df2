// Package config loads runtime settings for the portfolio binary.
//
// Sources, lowest precedence first: built-in defaults, the YAML config file,
// a .env file, and the process environment. None of them influence the
// initial UI state; they only cover logging, tracing and the HTTP listener.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	// DirEnv overrides the ~/.portfolio base directory (for testing).
	DirEnv = "PORTFOLIO_DIR"
	// FileEnv points at an explicit config file.
	FileEnv = "PORTFOLIO_CONFIG"
	// DefaultDir is the base directory under the user's home.
	DefaultDir = ".portfolio"

	DefaultListenAddr = ":8080"
	DefaultLogLevel   = "info"
)

// Config holds runtime settings.
type Config struct {
	LogFile      string `yaml:"log_file"`
	LogLevel     string `yaml:"log_level"`
	ListenAddr   string `yaml:"listen_addr"`
	AltScreen    bool   `yaml:"alt_screen"`
	Mouse        bool   `yaml:"mouse"`
	OTLPEndpoint string `yaml:"otlp_endpoint"`
	OTLPInsecure bool   `yaml:"otlp_insecure"`
	ServiceName  string `yaml:"service_name"`
}

// Loader reads configuration from a filesystem and an environment lookup.
type Loader struct {
	FS     *afero.Afero
	Getenv func(string) string
	Home   string
}

// Default returns the built-in settings rooted at dir.
func Default(dir string) Config {
	return Config{
		LogFile:    filepath.Join(dir, "portfolio.log"),
		LogLevel:   DefaultLogLevel,
		ListenAddr: DefaultListenAddr,
		AltScreen:  true,
		Mouse:      true,
	}
}

// Load resolves the configuration. A missing config file is not an error.
func (l Loader) Load() (Config, error) {
	dir := l.Getenv(DirEnv)
	if dir == "" {
		dir = filepath.Join(l.Home, DefaultDir)
	}
	cfg := Default(dir)

	path := l.Getenv(FileEnv)
	if path == "" {
		path = filepath.Join(dir, "config.yaml")
	}
	if err := l.loadFile(path, &cfg); err != nil {
		return Config{}, err
	}
	if err := applyEnv(&cfg, l.Getenv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (l Loader) loadFile(path string, cfg *Config) error {
	exists, err := l.FS.Exists(path)
	if err != nil {
		return fmt.Errorf("failed to check config file: %w", err)
	}
	if !exists {
		return nil
	}
	content, err := l.FS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv("PORTFOLIO_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := getenv("PORTFOLIO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv("PORT"); v != "" {
		cfg.ListenAddr = ":" + v
	}
	if v := getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.OTLPEndpoint = v
	}
	if v := getenv("OTEL_SERVICE_NAME"); v != "" {
		cfg.ServiceName = v
	}
	for name, dst := range map[string]*bool{
		"PORTFOLIO_ALT_SCREEN":    &cfg.AltScreen,
		"PORTFOLIO_MOUSE":         &cfg.Mouse,
		"PORTFOLIO_OTLP_INSECURE": &cfg.OTLPInsecure,
	} {
		v := getenv(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = b
	}
	return nil
}

// LoadDotEnv loads the given .env files into the process environment
// without overriding variables that are already set. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

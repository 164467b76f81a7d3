package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/anytypeio/go-notion-export/pkg/logging"
)

var log = logging.Logger("notion-config")

const (
	appDirName     = "notion-export"
	configFileName = "config.yml"
)

// Config carries everything a run needs. Values come from the config
// file first, NOTION_* environment variables override them and command
// line flags override both.
type Config struct {
	Token         string `yaml:"token"`
	OutputDir     string `yaml:"output_dir" split_words:"true"`
	PageSize      int64  `yaml:"page_size" split_words:"true"`
	DownloadFiles bool   `yaml:"download_files" split_words:"true"`
}

var DefaultConfig = Config{
	OutputDir: "output",
	PageSize:  100,
}

func WithToken(token string) func(*Config) {
	return func(c *Config) {
		c.Token = token
	}
}

func WithOutputDir(dir string) func(*Config) {
	return func(c *Config) {
		c.OutputDir = dir
	}
}

func WithPageSize(size int64) func(*Config) {
	return func(c *Config) {
		c.PageSize = size
	}
}

func WithDownloadFiles(download bool) func(*Config) {
	return func(c *Config) {
		c.DownloadFiles = download
	}
}

func New(options ...func(*Config)) *Config {
	cfg := DefaultConfig
	for _, opt := range options {
		opt(&cfg)
	}
	return &cfg
}

// Path returns the location of the user's config file.
func Path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appDirName, configFileName), nil
}

// Load reads the config file when one exists and applies environment
// overrides on top. A missing file is not an error, the defaults stand.
func Load() (*Config, error) {
	cfg := New()
	path, err := Path()
	if err != nil {
		return nil, err
	}
	if err = loadFile(path, cfg); err != nil {
		return nil, err
	}
	if err = envconfig.Process("NOTION", cfg); err != nil {
		log.Errorf("failed to read config from env: %v", err)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if err = yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// Save writes the config file, creating its directory when needed. The
// file stays 0600, it holds the api token.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0600)
}

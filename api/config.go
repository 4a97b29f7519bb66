package api

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Environment variables holding API credentials. Username, password, and
// tenant are required; the base URL is an optional override used mostly
// for testing against local servers.
const (
	EnvUsername = "ANTITHESIS_USERNAME"
	EnvPassword = "ANTITHESIS_PASSWORD"
	EnvTenant   = "ANTITHESIS_TENANT"
	EnvBaseURL  = "ANTITHESIS_BASE_URL"
)

// EnvConfigFile overrides the config file location.
const EnvConfigFile = "SNOUTY_CONFIG"

// MissingConfigError indicates a required credential was not found in the
// environment or the config file.
type MissingConfigError struct {
	Name string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("missing environment variable: %s", e.Name)
}

// Config carries the credentials and endpoint settings for one invocation.
// It is built once at process start and passed into the client constructor;
// nothing reads the environment after that.
type Config struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Tenant   string `yaml:"tenant"`
	BaseURL  string `yaml:"base_url,omitempty"`
}

// LoadConfig resolves credentials, in precedence order: process
// environment, then the optional YAML config file ($SNOUTY_CONFIG or
// ~/.config/snouty/config.yaml). A .env file in the working directory is
// loaded first without overriding variables already set. Any of the three
// credentials still unset afterwards is a fatal configuration error,
// reported before any network activity.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Username: os.Getenv(EnvUsername),
		Password: os.Getenv(EnvPassword),
		Tenant:   os.Getenv(EnvTenant),
		BaseURL:  os.Getenv(EnvBaseURL),
	}

	fileCfg, err := readConfigFile()
	if err != nil {
		return nil, err
	}
	if fileCfg != nil {
		if cfg.Username == "" {
			cfg.Username = fileCfg.Username
		}
		if cfg.Password == "" {
			cfg.Password = fileCfg.Password
		}
		if cfg.Tenant == "" {
			cfg.Tenant = fileCfg.Tenant
		}
		if cfg.BaseURL == "" {
			cfg.BaseURL = fileCfg.BaseURL
		}
	}

	switch {
	case cfg.Username == "":
		return nil, &MissingConfigError{Name: EnvUsername}
	case cfg.Password == "":
		return nil, &MissingConfigError{Name: EnvPassword}
	case cfg.Tenant == "":
		return nil, &MissingConfigError{Name: EnvTenant}
	}
	return cfg, nil
}

func readConfigFile() (*Config, error) {
	path := os.Getenv(EnvConfigFile)
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil
		}
		path = filepath.Join(home, ".config", "snouty", "config.yaml")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
	}
	return &cfg, nil
}

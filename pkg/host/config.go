package host

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config carries host-module settings loaded from a TOML file.
type Config struct {
	Mail  MailConfig  `toml:"mail"`
	Store StoreConfig `toml:"store"`
}

// MailConfig holds SMTP settings for the mail module.
type MailConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
}

// StoreConfig holds the default database path for the store module.
type StoreConfig struct {
	Path string `toml:"path"`
}

// LoadConfig parses a TOML configuration file.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load host config %s: %w", path, err)
	}
	return &cfg, nil
}

// MailConfigFromEnv reads SMTP settings from SMTP_HOST, SMTP_PORT,
// SMTP_USER, SMTP_PASS and SMTP_FROM.
func MailConfigFromEnv() (MailConfig, error) {
	cfg := MailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Username: os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASS"),
		From:     os.Getenv("SMTP_FROM"),
	}
	portStr := os.Getenv("SMTP_PORT")
	if cfg.Host == "" || portStr == "" {
		return cfg, fmt.Errorf("SMTP_HOST and SMTP_PORT environment variables must be set")
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return cfg, fmt.Errorf("SMTP_PORT must be an integer")
	}
	cfg.Port = port
	return cfg, nil
}

// This file defines the configuration structure for the application.
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

// Config holds all configuration settings for the application.
// It maps directly to the structure of config.yml.
type Config struct {
	Port     int `mapstructure:"port"`
	Upstream struct {
		BaseURL          string        `mapstructure:"base_url"`
		Timeout          time.Duration `mapstructure:"timeout"`
		DetailTimeout    time.Duration `mapstructure:"detail_timeout"`
		UserAgent        string        `mapstructure:"user_agent"`
		CloudflareBypass bool          `mapstructure:"cloudflare_bypass"`
		MaxBodyBytes     int64         `mapstructure:"max_body_bytes"`
		// ImageHosts lists extra domains the image proxy may fetch from, in
		// addition to the base URL host. Subdomains of each entry match.
		ImageHosts []string `mapstructure:"image_hosts"`
	} `mapstructure:"upstream"`
	Monitor struct {
		// Interval between upstream probes, in minutes. Zero disables probing.
		Interval int `mapstructure:"interval"`
	} `mapstructure:"monitor"`
	Server struct {
		RequestTimeout time.Duration `mapstructure:"request_timeout"`
	} `mapstructure:"server"`
}

// Load reads configuration from the current directory.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom reads an optional .env file and an optional config.yml from dir.
// Environment variables prefixed with KOMIK_ override both, e.g.
// KOMIK_UPSTREAM_BASE_URL overrides `upstream.base_url`.
func LoadFrom(dir string) (*Config, error) {
	// Existing environment variables win over .env entries.
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("KOMIK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", 3000)
	v.SetDefault("upstream.base_url", "https://komikcast.li")
	v.SetDefault("upstream.timeout", 10*time.Second)
	v.SetDefault("upstream.detail_timeout", 15*time.Second)
	v.SetDefault("upstream.user_agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36")
	v.SetDefault("upstream.cloudflare_bypass", true)
	v.SetDefault("upstream.max_body_bytes", 10<<20)
	v.SetDefault("upstream.image_hosts", []string{})
	v.SetDefault("monitor.interval", 15)
	v.SetDefault("server.request_timeout", 60*time.Second)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	config.Upstream.BaseURL = strings.TrimRight(config.Upstream.BaseURL, "/")

	return &config, nil
}

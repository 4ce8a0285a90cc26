// Package config loads server settings from the environment with
// development defaults.
package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Addr            string
	DBPath          string
	APIKey          string
	APIHost         string
	SessionSecret   string
	SessionLifetime time.Duration
	AllowedOrigin   string
}

// Load reads TRANSLATA_* environment variables, falling back to defaults
// suitable for local development. The defaults are not for production use.
func Load() *Config {
	v := viper.New()
	v.SetEnvPrefix("translata")
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("db_path", "translata.db")
	v.SetDefault("api_key", "")
	v.SetDefault("api_host", "translate-plus.p.rapidapi.com")
	v.SetDefault("session_secret", "dev-secret-change-me")
	v.SetDefault("session_lifetime", 24*time.Hour)
	v.SetDefault("allowed_origin", "http://localhost:3000")

	return &Config{
		Addr:            v.GetString("addr"),
		DBPath:          v.GetString("db_path"),
		APIKey:          v.GetString("api_key"),
		APIHost:         v.GetString("api_host"),
		SessionSecret:   v.GetString("session_secret"),
		SessionLifetime: v.GetDuration("session_lifetime"),
		AllowedOrigin:   v.GetString("allowed_origin"),
	}
}

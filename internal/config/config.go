// Package config loads service configuration from the environment.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Database Database
	Source   Source
	Redis    Redis
	Server   Server
	Schedule Schedule
	Export   Export
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

type Database struct {
	URL string `envconfig:"DATABASE_URL" required:"true"`
}

type Source struct {
	BaseURL      string        `envconfig:"SOURCE_BASE_URL" default:"https://www.nba.com"`
	Timeout      time.Duration `envconfig:"SOURCE_TIMEOUT" default:"30s"`
	Passes       int           `envconfig:"SOURCE_PASSES" default:"3"`
	RequestDelay time.Duration `envconfig:"SOURCE_REQUEST_DELAY" default:"2s"`
	PassCooldown time.Duration `envconfig:"SOURCE_PASS_COOLDOWN" default:"10s"`
}

type Redis struct {
	// URL is optional; an empty value disables run notifications.
	URL string `envconfig:"REDIS_URL"`
}

type Server struct {
	Port int `envconfig:"HTTP_PORT" default:"8080"`
}

type Schedule struct {
	// Window selects which scheduled games the daily run ingests.
	Window string `envconfig:"INGEST_WINDOW" default:"yesterday"`
	// DailyAt is the local wall-clock time of the daily run.
	DailyAt string `envconfig:"INGEST_DAILY_AT" default:"08:00"`
}

type Export struct {
	Dir       string `envconfig:"EXPORT_DIR" default:"exports"`
	ChunkSize int    `envconfig:"EXPORT_CHUNK_SIZE" default:"50000"`
}

// New reads the configuration from the environment.
func New() (*Config, error) {
	var c Config
	if err := envconfig.Process("courtside", &c); err != nil {
		return nil, err
	}
	return &c, nil
}

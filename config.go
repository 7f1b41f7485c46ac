package client

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config controls engine timing and retry behavior. Zero values fall back to
// the defaults applied in NewEngine.
type Config struct {
	// HTTPTimeout bounds a single HTTP request end to end.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	// TickInterval is the length of one countdown unit. Production keeps the
	// one-second default; tests compress it.
	TickInterval time.Duration `envconfig:"TICK_INTERVAL" default:"1s"`
	// MaxGetAttempts bounds backoff retries of idempotent GETs.
	MaxGetAttempts int `envconfig:"MAX_GET_ATTEMPTS" default:"3"`
	// BaseBackoff is the initial retry interval.
	BaseBackoff time.Duration `envconfig:"BASE_BACKOFF" default:"100ms"`
	// MaxInterval caps the retry interval growth.
	MaxInterval time.Duration `envconfig:"MAX_INTERVAL" default:"5s"`
}

// LoadConfig reads NUR_-prefixed environment overrides
// (NUR_HTTP_TIMEOUT, NUR_TICK_INTERVAL, ...).
func LoadConfig() (Config, error) {
	var c Config
	err := envconfig.Process("nur", &c)
	return c, err
}

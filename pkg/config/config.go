package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	Backend       BackendConfig
	Redis         RedisConfig
	Session       SessionConfig
	AuthRateLimit AuthRateLimitConfig
	CORS          CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Backend.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"REACHLY_APP_ENV" required:"true"`
	Port         string `envconfig:"REACHLY_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"REACHLY_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"REACHLY_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// BackendConfig points the portal at the lead-matching backend API.
type BackendConfig struct {
	BaseURL string        `envconfig:"REACHLY_BACKEND_URL" required:"true"`
	Timeout time.Duration `envconfig:"REACHLY_BACKEND_TIMEOUT" default:"15s"`
}

func (b BackendConfig) validate() error {
	if strings.TrimSpace(b.BaseURL) == "" {
		return fmt.Errorf("%s is required", EnvBackendURL)
	}
	if b.Timeout <= 0 {
		return fmt.Errorf("backend timeout must be positive")
	}
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"REACHLY_REDIS_URL" required:"true"`
	Address      string        `envconfig:"REACHLY_REDIS_ADDR"`
	Password     string        `envconfig:"REACHLY_REDIS_PASSWORD"`
	DB           int           `envconfig:"REACHLY_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"REACHLY_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"REACHLY_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"REACHLY_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"REACHLY_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"REACHLY_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// SessionConfig governs the portal-issued session token and its Redis record.
type SessionConfig struct {
	JWTSecret  string `envconfig:"REACHLY_SESSION_JWT_SECRET" required:"true"`
	JWTIssuer  string `envconfig:"REACHLY_SESSION_JWT_ISSUER" required:"true"`
	TTLMinutes int    `envconfig:"REACHLY_SESSION_TTL_MINUTES" default:"480"`
}

// TTL returns the session lifetime configured in minutes.
func (s SessionConfig) TTL() time.Duration {
	if s.TTLMinutes <= 0 {
		return 0
	}
	return time.Duration(s.TTLMinutes) * time.Minute
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"REACHLY_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit int           `envconfig:"REACHLY_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"REACHLY_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	ResetWindow     time.Duration `envconfig:"REACHLY_AUTH_RATE_LIMIT_RESET_WINDOW" default:"5m"`
	ResetEmailLimit int           `envconfig:"REACHLY_AUTH_RATE_LIMIT_RESET_EMAIL_LIMIT" default:"3"`
	ResetIPLimit    int           `envconfig:"REACHLY_AUTH_RATE_LIMIT_RESET_IP_LIMIT" default:"20"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"REACHLY_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,https://www.reachly.ca"`
}

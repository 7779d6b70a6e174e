package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"

	"github.com/pemdes/webdesa/pkg"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	JWTSecretEnvVar    = "WEBDESA_JWT_SECRET"
	minJWTSecretLength = 32

	defaultTokenTTL      = 7 * 24 * time.Hour
	defaultResetTokenTTL = time.Hour
)

var ErrJWTSecretMissing = errors.New("jwt secret missing")

type Config struct {
	Environment string `toml:"-"`

	Host string `toml:"host"`
	Port int    `toml:"port"`

	// logging
	LogLevel    string `toml:"log_level"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`

	// redis (token denylist, login rate limiting)
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	LoginRateLimitAllowedPerMin int      `toml:"login_rate_limit_allowed_per_min"`
	AllowedOrigins              []string `toml:"allowed_origins"`
	SentryEnabled               bool     `toml:"sentry_enabled"`

	// go duration strings, e.g. "168h"
	TokenTTLRaw      string `toml:"token_ttl"`
	ResetTokenTTLRaw string `toml:"reset_token_ttl"`

	TokenTTL      time.Duration `toml:"-"`
	ResetTokenTTL time.Duration `toml:"-"`
}

func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

type Toml struct {
	Development *Config `toml:"development"`
	Production  *Config `toml:"production"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
		env = EnvDevelopment
	case "prod", "production":
		cfg = t.Production
		env = EnvProduction
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("no [%s] section in config", env)
	}
	cfg.Environment = env
	return cfg, nil
}

func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() error {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.PostgresPort == "" {
		c.PostgresPort = "5432"
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.LoginRateLimitAllowedPerMin <= 0 {
		c.LoginRateLimitAllowedPerMin = 15
	}

	var err error
	if c.TokenTTL, err = parseDuration(c.TokenTTLRaw, defaultTokenTTL); err != nil {
		return fmt.Errorf("token_ttl: %w", err)
	}
	if c.ResetTokenTTL, err = parseDuration(c.ResetTokenTTLRaw, defaultResetTokenTTL); err != nil {
		return fmt.Errorf("reset_token_ttl: %w", err)
	}

	return nil
}

func parseDuration(raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %s", raw)
	}
	return d, nil
}

// JWTSecret resolves the token signing secret. Production refuses to start
// without a strong secret; development falls back to a random per-process
// secret, so tokens do not survive a restart.
func JWTSecret(cfg *Config, lookupEnv func(string) string) ([]byte, error) {
	secret := lookupEnv(JWTSecretEnvVar)

	if cfg.IsProduction() {
		if secret == "" {
			return nil, fmt.Errorf("%w: set %s", ErrJWTSecretMissing, JWTSecretEnvVar)
		}
		if len(secret) < minJWTSecretLength {
			return nil, fmt.Errorf("%s must be at least %d bytes long", JWTSecretEnvVar, minJWTSecretLength)
		}
		return []byte(secret), nil
	}

	if secret != "" {
		return []byte(secret), nil
	}

	log.Warnf("%s not set, using a random secret for this process", JWTSecretEnvVar)
	random, err := pkg.GenerateRandomBytes(minJWTSecretLength)
	if err != nil {
		return nil, fmt.Errorf("generate jwt secret: %w", err)
	}
	return random, nil
}

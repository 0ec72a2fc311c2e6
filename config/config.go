// Package config loads the bridge configuration from the environment once at
// startup; the resulting Config is treated as immutable.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/go-playground/errors/v5"
)

// Realm holds one OIDC client configuration. The bridge runs two: the public
// member realm and the privileged staff realm.
type Realm struct {
	IssuerURL    string
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

// Config holds the full service configuration.
type Config struct {
	// GhostURL is the public origin of the Ghost site.
	GhostURL string

	// DatabaseURL is the connection string for Ghost's own database.
	DatabaseURL string

	// AdminAPIKey is a Ghost admin integration key ("id:hexsecret").
	AdminAPIKey string

	// AdminAPIURL defaults to GhostURL.
	AdminAPIURL string

	Member Realm
	Staff  Realm

	ListenAddr string

	// CookieHashKey and CookieBlockKey protect the bridge's own cookies.
	// When unset, random keys are generated per boot, which invalidates
	// in-flight logins across restarts but needs no provisioning.
	CookieHashKey  string
	CookieBlockKey string

	// LoginRate / LoginBurst bound login attempts per client IP per second.
	LoginRate  float64
	LoginBurst int

	// SessionSweepInterval controls the expired-session sweep; zero disables
	// it.
	SessionSweepInterval time.Duration
}

// Load reads the configuration from environment variables, reporting every
// missing required variable at once.
func Load() (*Config, error) {
	cfg := &Config{}

	var missing []string
	required := func(key string) string {
		v := os.Getenv(key)
		if v == "" {
			missing = append(missing, key)
		}

		return v
	}

	cfg.GhostURL = required("GHOST_URL")
	cfg.DatabaseURL = required("DATABASE_URL")
	cfg.AdminAPIKey = required("GHOST_ADMIN_API_KEY")

	cfg.Member = Realm{
		IssuerURL:    required("MEMBER_OIDC_ISSUER"),
		ClientID:     required("MEMBER_OIDC_CLIENT_ID"),
		ClientSecret: required("MEMBER_OIDC_CLIENT_SECRET"),
		CallbackURL:  required("MEMBER_OIDC_CALLBACK_URL"),
	}
	cfg.Staff = Realm{
		IssuerURL:    required("STAFF_OIDC_ISSUER"),
		ClientID:     required("STAFF_OIDC_CLIENT_ID"),
		ClientSecret: required("STAFF_OIDC_CLIENT_SECRET"),
		CallbackURL:  required("STAFF_OIDC_CALLBACK_URL"),
	}

	if len(missing) > 0 {
		return nil, errors.Newf("required environment variables are not set: %v", missing)
	}

	cfg.AdminAPIURL = getEnv("GHOST_ADMIN_API_URL", cfg.GhostURL)
	cfg.ListenAddr = getEnv("LISTEN_ADDR", ":8080")
	cfg.CookieHashKey = os.Getenv("COOKIE_HASH_KEY")
	cfg.CookieBlockKey = os.Getenv("COOKIE_BLOCK_KEY")

	var err error
	if cfg.LoginRate, err = getEnvFloat("LOGIN_RATE", 5); err != nil {
		return nil, err
	}
	if cfg.LoginBurst, err = getEnvInt("LOGIN_BURST", 10); err != nil {
		return nil, err
	}
	if cfg.SessionSweepInterval, err = getEnvDuration("SESSION_SWEEP_INTERVAL", 0); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid value for %s", key)
	}

	return i, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid value for %s", key)
	}

	return f, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid value for %s", key)
	}

	return d, nil
}

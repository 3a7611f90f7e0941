package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultServerPort     = "8000"
	defaultTokenTTL       = 20 * time.Minute
	defaultConnectRetries = 5
)

// Config is the process-wide configuration, built once at startup and passed
// to constructors.
type Config struct {
	ServerPort     string
	GinMode        string
	DB             *DBConfig
	JWTSecret      string
	TokenTTL       time.Duration
	SeedUsersPath  string
	ConnectRetries int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	dbCfg, err := LoadDBConfig()
	if err != nil {
		return nil, err
	}

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY not set in environment")
	}

	tokenTTL := defaultTokenTTL
	if v := os.Getenv("JWT_EXPIRATION_MINUTES"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil || minutes <= 0 {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_MINUTES %q", v)
		}
		tokenTTL = time.Duration(minutes) * time.Minute
	}

	retries := defaultConnectRetries
	if v := os.Getenv("DB_CONNECT_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid DB_CONNECT_RETRIES %q", v)
		}
		retries = n
	}

	return &Config{
		ServerPort:     getenv("SERVER_PORT", defaultServerPort),
		GinMode:        getenv("GIN_MODE", "release"),
		DB:             dbCfg,
		JWTSecret:      jwtSecret,
		TokenTTL:       tokenTTL,
		SeedUsersPath:  os.Getenv("SEED_USERS_PATH"),
		ConnectRetries: retries,
	}, nil
}

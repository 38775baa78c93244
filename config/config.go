package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application settings.
type Config struct {
	ServerPort   int
	JWTSecretKey string

	// DatabaseURL empty selects the in-memory stores (non-durable, reset on
	// restart).
	DatabaseURL string

	ENSResolverURL     string
	ProfileResolverURL string
	ResolverTimeout    time.Duration

	// DUPR cross-checks are disabled when the API key is empty.
	DUPRAPIURL string
	DUPRAPIKey string

	// Banner uploads are disabled when the R2 settings are incomplete.
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string
}

// Load reads configuration from the environment, optionally picking up a
// .env file for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	jwtKey := os.Getenv("JWT_SECRET_KEY")
	if jwtKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}

	portStr := os.Getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	resolverTimeout := 5 * time.Second
	if timeoutStr := os.Getenv("RESOLVER_TIMEOUT"); timeoutStr != "" {
		resolverTimeout, err = time.ParseDuration(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid RESOLVER_TIMEOUT environment variable: %w", err)
		}
	}

	cfg := &Config{
		ServerPort:   port,
		JWTSecretKey: jwtKey,
		DatabaseURL:  os.Getenv("DATABASE_URL"),

		ENSResolverURL:     getEnvOrDefault("ENS_RESOLVER_URL", "https://api.ensideas.com"),
		ProfileResolverURL: getEnvOrDefault("PROFILE_RESOLVER_URL", "https://api.web3.bio"),
		ResolverTimeout:    resolverTimeout,

		DUPRAPIURL: os.Getenv("DUPR_API_URL"),
		DUPRAPIKey: os.Getenv("DUPR_API_KEY"),

		R2AccountID:       os.Getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:      os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL:   os.Getenv("R2_PUBLIC_BASE_URL"),
	}
	return cfg, nil
}

// R2Configured reports whether all settings needed for banner uploads are
// present.
func (c *Config) R2Configured() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" && c.R2SecretAccessKey != "" &&
		c.R2BucketName != "" && c.R2PublicBaseURL != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

package config

import "time"

// DirectoryConfig holds runtime configuration for the directory service.
type DirectoryConfig struct {
	Environment        string
	Addr               string
	FulfillmentURL     string
	GatewayTimeout     time.Duration
	HealthProbeTimeout time.Duration
	HealthPollInterval time.Duration
	RateLimitRedisAddr string
	RateLimitRedisPass string
	RateLimitRedisDB   int
}

// LoadDirectoryConfig constructs a DirectoryConfig from environment variables.
func LoadDirectoryConfig() DirectoryConfig {
	return DirectoryConfig{
		Environment:        GetString("APP_ENV", "development"),
		Addr:               GetString("DIRECTORY_ADDR", ":3000"),
		FulfillmentURL:     GetString("FULFILLMENT_URL", "http://localhost:5001"),
		GatewayTimeout:     time.Duration(GetInt("GATEWAY_TIMEOUT_SECONDS", 10)) * time.Second,
		HealthProbeTimeout: time.Duration(GetInt("GATEWAY_HEALTH_TIMEOUT_SECONDS", 2)) * time.Second,
		HealthPollInterval: time.Duration(GetInt("HEALTH_POLL_SECONDS", 15)) * time.Second,
		RateLimitRedisAddr: GetString("RATE_LIMIT_REDIS_ADDR", ""),
		RateLimitRedisPass: GetString("RATE_LIMIT_REDIS_PASSWORD", ""),
		RateLimitRedisDB:   GetInt("RATE_LIMIT_REDIS_DB", 0),
	}
}

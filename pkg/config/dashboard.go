package config

import "time"

// DashboardConfig holds runtime configuration for the dashboard web UI.
type DashboardConfig struct {
	Environment    string
	Addr           string
	DirectoryURL   string
	RequestTimeout time.Duration
}

// LoadDashboardConfig constructs a DashboardConfig from environment variables.
func LoadDashboardConfig() DashboardConfig {
	return DashboardConfig{
		Environment:    GetString("APP_ENV", "development"),
		Addr:           GetString("DASHBOARD_ADDR", ":8080"),
		DirectoryURL:   GetString("DIRECTORY_URL", "http://localhost:3000"),
		RequestTimeout: time.Duration(GetInt("DASHBOARD_REQUEST_TIMEOUT_SECONDS", 10)) * time.Second,
	}
}

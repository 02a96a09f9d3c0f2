package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Backend   BackendConfig
	Dashboard DashboardConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port           int
	AllowedOrigins []string
}

// BackendConfig points at the remote GastroBar REST API that owns all
// durable state.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type DashboardConfig struct {
	TopItemsLimit int
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	viper.SetDefault("BACKEND_BASE_URL", "http://localhost:8088/api")
	viper.SetDefault("BACKEND_TIMEOUT", "15s")
	viper.SetDefault("DASHBOARD_TOP_LIMIT", 5)
	viper.SetDefault("LOG_LEVEL", "info")

	timeout, err := time.ParseDuration(viper.GetString("BACKEND_TIMEOUT"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           viper.GetInt("SERVER_PORT"),
			AllowedOrigins: splitOrigins(viper.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Backend: BackendConfig{
			BaseURL: strings.TrimRight(viper.GetString("BACKEND_BASE_URL"), "/"),
			Timeout: timeout,
		},
		Dashboard: DashboardConfig{
			TopItemsLimit: viper.GetInt("DASHBOARD_TOP_LIMIT"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

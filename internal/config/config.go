package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultAPIURL points at a locally running backend.
	DefaultAPIURL = "http://localhost:8000/api"

	// DefaultDashboardPassword is the placeholder interviewer gate.
	// This is cosmetic gating, not authentication; real deployments
	// must enforce access server-side.
	DefaultDashboardPassword = "interviewer123"
)

// Config holds client settings resolved from the environment.
type Config struct {
	// APIURL is the backend base URL, without a trailing slash.
	APIURL string

	// DashboardPassword gates the interviewer dashboard client-side.
	DashboardPassword string
}

// Load reads .env if present and resolves settings from the environment.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		APIURL:            DefaultAPIURL,
		DashboardPassword: DefaultDashboardPassword,
	}

	if v := os.Getenv("INTERVUE_API_URL"); v != "" {
		cfg.APIURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("INTERVUE_DASHBOARD_PASSWORD"); v != "" {
		cfg.DashboardPassword = v
	}

	return cfg
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultListenAddr = ":8010"
	defaultDataDir    = "data"
	defaultScratchDir = "tmp"
	defaultJWTSecret  = "change-me-jwt-secret"
)

// Config carries everything the API needs from the environment.
// Paths are resolved once at load time; DataDir stays relative because
// stored asset URLs are relative to the project root.
type Config struct {
	ListenAddr string
	DSN        string

	// ProjectRoot anchors both the permanent data dir and the scratch root.
	ProjectRoot string
	DataDir     string
	ScratchRoot string

	AdminAPIKey string
	UserAPIKey  string
	JWTSecret   string
}

func Load() (*Config, error) {
	cfg := &Config{}

	cfg.DSN = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DSN == "" {
		return nil, fmt.Errorf("DATABASE_URL must be set")
	}

	cfg.AdminAPIKey = strings.TrimSpace(os.Getenv("ADMIN_API_KEY"))
	if cfg.AdminAPIKey == "" {
		return nil, fmt.Errorf("ADMIN_API_KEY must be set")
	}
	cfg.UserAPIKey = strings.TrimSpace(os.Getenv("USER_API_KEY"))
	if cfg.UserAPIKey == "" {
		return nil, fmt.Errorf("USER_API_KEY must be set")
	}

	cfg.ListenAddr = getEnv("LISTEN_ADDR", defaultListenAddr)
	cfg.JWTSecret = getEnv("JWT_SECRET", defaultJWTSecret)

	root := strings.TrimSpace(os.Getenv("PROJECT_ROOT"))
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		root = wd
	}
	cfg.ProjectRoot = root
	cfg.DataDir = getEnv("DATA_DIR", defaultDataDir)
	cfg.ScratchRoot = filepath.Join(root, getEnv("SCRATCH_DIR", defaultScratchDir))

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

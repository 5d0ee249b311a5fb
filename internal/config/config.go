package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings shared by the binaries.
type Config struct {
	DatabaseURL     string
	ServerPort      int
	GroupsFile      string
	ExhibitionsFile string
}

// Load reads configuration from environment variables, optionally seeded
// from a .env file. A missing .env is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
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

	groups := os.Getenv("GROUPS_FILE")
	if groups == "" {
		groups = "data/groups.json"
	}
	exhibitions := os.Getenv("EXHIBITIONS_FILE")
	if exhibitions == "" {
		exhibitions = "data/exhibitions.json"
	}

	return &Config{
		DatabaseURL:     dbURL,
		ServerPort:      port,
		GroupsFile:      groups,
		ExhibitionsFile: exhibitions,
	}, nil
}

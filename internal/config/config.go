package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port    string // gin listen address, e.g. ":8080"
	DBPath  string
	NATSURL string // empty disables trip event publishing
}

// Load reads configuration from the environment, with a .env file merged in
// when present
func Load() *Config {
	// Load .env into environment (ignore if missing)
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/scheduler.db"
	}

	return &Config{
		Port:    port,
		DBPath:  dbPath,
		NATSURL: os.Getenv("NATS_URL"),
	}
}

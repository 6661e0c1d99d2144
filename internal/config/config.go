package config

import "os"

// Config carries process-level settings. Datastore connection settings are
// read by internal/db directly, matching the rest of the env surface.
type Config struct {
	Port            string
	StorageRoot     string // directory offloaded media is written to, served at /storage
	OffloadSchedule string // cron spec for the media offloader
	Environment     string // development, production
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		StorageRoot:     getEnv("STORAGE_ROOT", "./storage"),
		OffloadSchedule: getEnv("MEDIA_OFFLOAD_SCHEDULE", "@every 10m"),
		Environment:     getEnv("ENV", "development"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

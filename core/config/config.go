package config

import (
	"strings"
)

// Config holds all application configuration in a structured way.
type Config struct {
	App   AppConfig
	AI    AIConfig
	Cache CacheConfig
}

type AppConfig struct {
	Version            string
	Port               string
	Debug              bool
	Environment        string
	CorsAllowedOrigins []string
}

type AIConfig struct {
	GeminiAPIKey string
	GeminiModel  string
	HFToken      string
	HFModel      string
}

type CacheConfig struct {
	Capacity int
}

// Global provides access to the loaded configuration globally.
var Global *Config

// LoadConfig loads configuration from Environment Variables or defaults.
func LoadConfig() (*Config, error) {
	corsOrigins := []string{"http://localhost:3000", "http://localhost:5173"}
	if v := getEnv("APP_CORS_ALLOWED_ORIGINS", ""); v != "" {
		corsOrigins = strings.Split(v, ",")
	}

	cfg := &Config{
		App: AppConfig{
			Version:            "v1.2.0",
			Port:               getEnv("APP_PORT", "3000"),
			Debug:              getEnvBool("APP_DEBUG", false),
			Environment:        getEnv("APP_ENV", "development"),
			CorsAllowedOrigins: corsOrigins,
		},
		AI: AIConfig{
			// GEMINI_API_KEY is deliberately allowed to be empty here: a
			// missing key surfaces as a 500 on the first request, not as a
			// startup failure.
			GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
			GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			HFToken:      getEnv("HF_TOKEN", ""),
			HFModel:      getEnv("HF_MODEL", "mistralai/Mistral-7B-Instruct-v0.3"),
		},
		Cache: CacheConfig{
			Capacity: getEnvInt("CACHE_CAPACITY", 1000),
		},
	}

	Global = cfg
	return cfg, nil
}

package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	AppEnv         string
	FrontendURL    string
	LogLevel       string
	SwaggerEnabled bool
	MetricsEnabled bool
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}

	appEnv := getEnv("APP_ENV", "development")

	return &Config{
		Port:           getEnv("PORT", "8080"),
		AppEnv:         appEnv,
		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:3000"),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", "info")),
		SwaggerEnabled: getEnvBool("SWAGGER_ENABLED", appEnv != "production"),
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
	}
}

// IsProduction reports whether gin should run in release mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Invalid boolean for %s: %q, using default %v", key, value, defaultValue)
		return defaultValue
	}
	return b
}

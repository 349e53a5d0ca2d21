package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	GinMode          string
	MongoURI         string
	MongoDatabase    string
	AllowedOrigins   []string
	RabbitMQURI      string
	RabbitMQExchange string
	JWTSecret        string
	LLMBaseURL       string
	LLMAPIKey        string
	LLMModel         string
}

var AppConfig *Config

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Port:             getEnvOrDefault("PORT", "5000"),
		GinMode:          getEnvOrDefault("GIN_MODE", "debug"),
		MongoURI:         getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:    getEnvOrDefault("MONGO_DATABASE", "quizhub"),
		AllowedOrigins:   splitList(getEnvOrDefault("ALLOWED_ORIGINS", "http://localhost:3000")),
		RabbitMQURI:      os.Getenv("RABBITMQ_URI"),
		RabbitMQExchange: os.Getenv("RABBITMQ_EXCHANGE"),
		JWTSecret:        getEnvOrDefault("JWT_SECRET", "development-secret"),
		LLMBaseURL:       getEnvOrDefault("LLM_BASE_URL", "http://localhost:11434/v1"),
		LLMAPIKey:        getEnvOrDefault("LLM_API_KEY", ""),
		LLMModel:         getEnvOrDefault("LLM_MODEL", "gemini-2.5-flash"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

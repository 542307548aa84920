package config

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DB struct {
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string
}

type Generator struct {
	Mode     string // "template" or "openai"
	APIKey   string
	Endpoint string
	Model    string
	Timeout  time.Duration
}

type Config struct {
	ServerPort               int
	Debug                    bool
	DB                       DB
	Generator                Generator
	JWTSecretKey             string
	TokenDuration            time.Duration
	OwnershipForbiddenStatus int
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func LoadDB() DB {
	return DB{
		DbHOST:     getEnv("DB_HOST", "localhost"),
		DbPORT:     getEnv("DB_PORT", "5432"),
		DbUSER:     getEnv("DB_USER", "postgres"),
		DbPASSWORD: getEnv("DB_PASSWORD", "password"),
		DbNAME:     getEnv("DB_NAME", "ideagen"),
		DbSSLMODE:  getEnv("DB_SSLMODE", "disable"),
	}
}

func LoadGenerator() Generator {
	gen := Generator{
		Mode:     getEnv("GENERATOR", "template"),
		APIKey:   getEnv("OPENAI_API_KEY", ""),
		Endpoint: getEnv("OPENAI_ENDPOINT", "https://api.openai.com/v1/completions"),
		Model:    getEnv("OPENAI_MODEL", "gpt-4"),
		Timeout:  parseDuration(getEnv("OPENAI_TIMEOUT", "30s"), 30*time.Second),
	}

	// without a key the networked generator cannot work
	if gen.Mode == "openai" && gen.APIKey == "" {
		gen.Mode = "template"
	}

	return gen
}

// parseOwnershipStatus restricts the configurable status for ownership
// failures to the two values the API has ever returned.
func parseOwnershipStatus(value string) int {
	status, err := strconv.Atoi(value)
	if err != nil || (status != http.StatusUnauthorized && status != http.StatusForbidden) {
		return http.StatusUnauthorized
	}
	return status
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:               getEnvAsInt("SERVER_PORT", 5000),
		Debug:                    getEnvBool("DEBUG", false),
		DB:                       LoadDB(),
		Generator:                LoadGenerator(),
		JWTSecretKey:             getEnv("JWT_SECRET_KEY", ""),
		TokenDuration:            parseDuration(getEnv("TOKEN_DURATION", "72h"), 72*time.Hour),
		OwnershipForbiddenStatus: parseOwnershipStatus(getEnv("OWNERSHIP_FORBIDDEN_STATUS", "401")),
	}
}

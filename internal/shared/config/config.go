package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	APIPrefix   string
	ProjectName string
	Version     string
	Debug       bool

	// Local database (auth users only; the CRM tables live in Supabase)
	DatabaseURL string

	// Recognized but unused by any code path in this service
	RedisURL string

	// Security
	SecretKey                string
	AccessTokenExpireMinutes int
	Algorithm                string

	// External integration
	ExternalAPIBaseURL string
	ExternalAPIKey     string

	// Supabase
	SupabaseURL            string
	SupabaseKey            string
	SupabaseServiceRoleKey string

	// Logging
	LogLevel  string
	LogFormat string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		Port:        os.Getenv("PORT"),
		Env:         os.Getenv("ENV"),
		APIPrefix:   os.Getenv("API_V1_STR"),
		ProjectName: os.Getenv("PROJECT_NAME"),
		Version:     os.Getenv("VERSION"),
		Debug:       getBool("DEBUG", true),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),

		SecretKey:                os.Getenv("SECRET_KEY"),
		AccessTokenExpireMinutes: getInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
		Algorithm:                os.Getenv("ALGORITHM"),

		ExternalAPIBaseURL: os.Getenv("EXTERNAL_API_BASE_URL"),
		ExternalAPIKey:     os.Getenv("EXTERNAL_API_KEY"),

		SupabaseURL:            os.Getenv("SUPABASE_URL"),
		SupabaseKey:            os.Getenv("SUPABASE_KEY"),
		SupabaseServiceRoleKey: os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),

		LogLevel:  os.Getenv("LOG_LEVEL"),
		LogFormat: os.Getenv("LOG_FORMAT"),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.APIPrefix == "" {
		cfg.APIPrefix = "/api/v1"
	}
	if cfg.ProjectName == "" {
		cfg.ProjectName = "Guido API"
	}
	if cfg.Version == "" {
		cfg.Version = "1.0.0"
	}
	if cfg.Algorithm == "" {
		cfg.Algorithm = "HS256"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "json"
	}

	return cfg
}

func getBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

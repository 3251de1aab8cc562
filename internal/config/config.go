package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for our application
type Config struct {
	Port            string
	Origin          string
	Environment     string
	SessionSecret   string
	SessionTTLHours int
	Database        DatabaseConfig
	Redis           RedisConfig
	CompanyCacheTTL int // minutes; 0 disables caching even when Redis is configured
	LogLevel        string
}

// DatabaseConfig holds database connection details
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	DSN      string
}

// RedisConfig holds the optional Redis connection details. An empty Addr
// means the application runs without the company lookup cache.
type RedisConfig struct {
	Addr string
	DB   int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	dbConfig := DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "3306"),
		Username: getEnv("DB_USERNAME", "root"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "clinicsuite"),
	}

	// Build DSN (Data Source Name) for MySQL connection
	dbConfig.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		dbConfig.Username, dbConfig.Password, dbConfig.Host, dbConfig.Port, dbConfig.Name)

	sessionTTL, err := strconv.Atoi(getEnv("SESSION_TTL_HOURS", "12"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL_HOURS: %w", err)
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		redisDB, err = strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
	}

	companyCacheTTL, err := strconv.Atoi(getEnv("COMPANY_CACHE_TTL_MINUTES", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid COMPANY_CACHE_TTL_MINUTES: %w", err)
	}

	return &Config{
		Port:            getEnv("PORT", "3001"),
		Origin:          getEnv("ORIGIN", "http://localhost:3001"),
		Environment:     getEnv("APP_ENV", "development"),
		SessionSecret:   getEnv("SESSION_SECRET", "default_session_secret"),
		SessionTTLHours: sessionTTL,
		Database:        dbConfig,
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", ""),
			DB:   redisDB,
		},
		CompanyCacheTTL: companyCacheTTL,
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// internal/config/config.go
package config

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	RedisAddr      string
	RedisUsername  string
	RedisPassword  string
	JWTSecret      string
	AllowedOrigins []string
	FrontendURL    string
	LogFile        string
}

// Load reads configuration from the environment. JWT_SECRET has no
// fallback: a process without an explicit secret must not start. The
// remaining defaults are only suitable for local development.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	origins := []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return &Config{
		Port:           getenv("PORT", "4000"),
		DBHost:         getenv("DB_HOST", "localhost"),
		DBPort:         getenv("DB_PORT", "5432"),
		DBUser:         getenv("DB_USER", "postgres"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         getenv("DB_NAME", "tracking_db"),
		RedisAddr:      getenv("REDIS_ADDR", "localhost:6379"),
		RedisUsername:  os.Getenv("REDIS_USERNAME"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      secret,
		AllowedOrigins: origins,
		FrontendURL:    getenv("FRONTEND_URL", "http://localhost:5173"),
		LogFile:        os.Getenv("LOG_FILE"),
	}, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

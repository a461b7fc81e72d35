package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the proverb chat API.
//
// Fields:
//   - Server: HTTP bind settings.
//   - Store: which account/history backend to use ("memory" or "mysql").
//   - Database: MySQL settings, only read when Store.Driver is "mysql".
//   - Auth: JWT signing secret and access-token lifetime.
//   - Classifier: settings for the external mood-classification endpoint.
type Config struct {
	Server     ServerConfig
	Store      StoreConfig
	Database   DatabaseConfig
	Auth       AuthConfig
	Classifier ClassifierConfig
}

type ServerConfig struct {
	Port int
}

type StoreConfig struct {
	Driver string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

type AuthConfig struct {
	Secret   string
	TokenTTL time.Duration
}

type ClassifierConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Load reads configuration from the environment, overlaying a .env file when
// one is present. The JWT secret has no default: startup fails without it.
func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	serverPort, _ := strconv.Atoi(getEnv("SERVER_PORT", "8000"))
	dbPort, _ := strconv.Atoi(getEnv("DB_PORT", "3306"))

	tokenTTL, err := time.ParseDuration(getEnv("TOKEN_TTL", "30m"))
	if err != nil {
		log.Fatalf("Invalid TOKEN_TTL: %v", err)
	}
	classifierTimeout, err := time.ParseDuration(getEnv("CLASSIFIER_TIMEOUT", "30s"))
	if err != nil {
		log.Fatalf("Invalid CLASSIFIER_TIMEOUT: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port: serverPort,
		},
		Store: StoreConfig{
			Driver: getEnv("STORE_DRIVER", "memory"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "gouser"),
			Password: getEnv("DB_PASSWORD", "gopass"),
			Name:     getEnv("DB_NAME", "proverbs"),
		},
		Auth: AuthConfig{
			Secret:   secret,
			TokenTTL: tokenTTL,
		},
		Classifier: ClassifierConfig{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			BaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com"),
			Model:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			Timeout: classifierTimeout,
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config almacena todos los parámetros de configuración de la aplicación.
type Config struct {
	DatabaseURL string
	ServerPort  int

	// AdminKey gates every non-GET request (x-api-key header). When
	// AdminKeyHash is set it takes precedence and the key is verified
	// against the bcrypt hash instead of compared in plain.
	AdminKey     string
	AdminKeyHash string

	CORSAllowedOrigins []string
}

// Load reads the configuration from environment variables. A .env file is
// loaded first when present (local development); a missing file is not fatal.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	adminKey := os.Getenv("ADMIN_API_KEY")
	adminKeyHash := os.Getenv("ADMIN_API_KEY_HASH")
	if adminKey == "" && adminKeyHash == "" {
		return nil, fmt.Errorf("either ADMIN_API_KEY or ADMIN_API_KEY_HASH must be set")
	}

	portStr := os.Getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	origins := []string{"*"}
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return &Config{
		DatabaseURL:        dbURL,
		ServerPort:         port,
		AdminKey:           adminKey,
		AdminKeyHash:       adminKeyHash,
		CORSAllowedOrigins: origins,
	}, nil
}

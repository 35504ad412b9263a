package config

import (
	"log"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config carries everything read from the environment at startup.
type Config struct {
	Addr           string
	DatabaseDSN    string
	JWTKey         []byte
	JWTIssuer      string
	JWTAudience    string
	AllowedOrigins []string
}

func Load() Config {
	cfg := Config{
		Addr:        getenv("ADDR", ":8080"),
		DatabaseDSN: os.Getenv("DB_DSN"),
		JWTKey:      []byte(getenv("JWT_KEY", "dev-insecure-key-change")),
		JWTIssuer:   getenv("JWT_ISSUER", "invoice-expense-saas"),
		JWTAudience: getenv("JWT_AUDIENCE", "invoice-expense-dashboard"),
	}
	origins := getenv("ALLOWED_ORIGINS", "http://localhost:3000")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the Postgres connection. The DSN is required; failing to
// connect at startup is fatal.
func InitDB(cfg Config) *gorm.DB {
	if cfg.DatabaseDSN == "" {
		log.Fatal("DB_DSN is not set; a Postgres DSN is required")
	}
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect postgres database:", err)
	}
	return db
}

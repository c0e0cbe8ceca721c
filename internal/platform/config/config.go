package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/expensio/invoice_ocr_api/internal/platform/iso4217"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// CompanyCurrency is the fallback currency for extraction candidates
	// that carry no currency evidence of their own.
	CompanyCurrency string

	// Extraction API languages used when a request does not name any.
	DefaultLanguages []string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Machine client allowed to request tokens. The secret is stored as a
	// bcrypt hash, never in the clear.
	APIClientID         string
	APIClientSecretHash string

	// Token endpoint rate limit in ulule/limiter format, e.g. "10-M".
	AuthRateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("COMPANY_CURRENCY", "CHF")
	viper.SetDefault("DEFAULT_LANGUAGES", []string{})
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "invoice-ocr-api")
	viper.SetDefault("API_CLIENT_ID", "")
	viper.SetDefault("API_CLIENT_SECRET_HASH", "")
	viper.SetDefault("AUTH_RATE_LIMIT", "10-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL not set. Falling back to the in-memory currency table.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.CompanyCurrency = viper.GetString("COMPANY_CURRENCY")
	if !iso4217.IsValid(cfg.CompanyCurrency) {
		return nil, fmt.Errorf("COMPANY_CURRENCY %q is not a valid ISO 4217 code", cfg.CompanyCurrency)
	}

	cfg.DefaultLanguages = viper.GetStringSlice("DEFAULT_LANGUAGES")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION (%q). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.APIClientID = viper.GetString("API_CLIENT_ID")
	cfg.APIClientSecretHash = viper.GetString("API_CLIENT_SECRET_HASH")
	if cfg.APIClientID == "" || cfg.APIClientSecretHash == "" {
		log.Println("Warning: API_CLIENT_ID / API_CLIENT_SECRET_HASH not set. The token endpoint will reject all clients.")
	}

	cfg.AuthRateLimit = viper.GetString("AUTH_RATE_LIMIT")

	return cfg, nil
}

package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret      = "a-very-secret-key-should-be-longer-and-random"
	defaultAccountLockTTL = 10 * time.Second
	defaultMigrationsPath = "file://migrations"
	defaultRateLimit      = "100-M"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	JWTSecret      string
	JWTIssuer      string
	MigrationsPath string

	// RedisAddress enables the distributed account lock when set.
	RedisAddress   string
	AccountLockTTL time.Duration

	ReceiptPrefix      string
	CurrencyCode       string
	RateLimit          string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", "")
	viper.SetDefault("MIGRATIONS_PATH", defaultMigrationsPath)
	viper.SetDefault("REDIS_ADDRESS", "")
	viper.SetDefault("ACCOUNT_LOCK_TTL", defaultAccountLockTTL.String())
	viper.SetDefault("RECEIPT_PREFIX", "TR")
	viper.SetDefault("CURRENCY_CODE", "ZAR")
	viper.SetDefault("RATE_LIMIT", defaultRateLimit)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	// Environment variables override defaults and the .env file. A variable set
	// to the empty string counts as set, so CORS_ALLOWED_ORIGINS= disables CORS.
	viper.AllowEmptyEnv(true)
	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:    viper.GetString("PGSQL_URL"),
		Port:           viper.GetString("PORT"),
		IsProduction:   viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:  viper.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:      viper.GetString("JWT_SECRET"),
		JWTIssuer:      viper.GetString("JWT_ISSUER"),
		MigrationsPath: viper.GetString("MIGRATIONS_PATH"),
		RedisAddress:   viper.GetString("REDIS_ADDRESS"),
		ReceiptPrefix:  strings.ToUpper(strings.TrimSpace(viper.GetString("RECEIPT_PREFIX"))),
		CurrencyCode:   strings.ToUpper(strings.TrimSpace(viper.GetString("CURRENCY_CODE"))),
		RateLimit:      viper.GetString("RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	lockTTLStr := viper.GetString("ACCOUNT_LOCK_TTL")
	lockTTL, err := time.ParseDuration(lockTTLStr)
	if err != nil || lockTTL <= 0 {
		lockTTL = defaultAccountLockTTL
		log.Printf("Warning: Invalid value for ACCOUNT_LOCK_TTL ('%s'). Defaulting to %s.\n", lockTTLStr, lockTTL.String())
	}
	cfg.AccountLockTTL = lockTTL

	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = defaultMigrationsPath
	}
	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
	}
	if cfg.ReceiptPrefix == "" {
		cfg.ReceiptPrefix = "TR"
	}
	if cfg.CurrencyCode == "" {
		cfg.CurrencyCode = "ZAR"
	}
	if cfg.RedisAddress == "" {
		log.Println("Warning: REDIS_ADDRESS not set. Account writes rely on database row locks only.")
	}

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

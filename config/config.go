package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	SiteURL   string // Public marketing site URL, used in the customer receipt footer
	BrandName string
	// SMTP Configuration (GoDaddy relay by default)
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromEmail string // Verified sender address (may differ from SMTP login)
	LeadEmailTo   string // Business inbox that receives quote requests
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitContactThreshold int
	RateLimitGlobalThreshold  int
	// Mail dispatch
	MailSendTimeoutSeconds int
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		SiteURL:   strings.TrimRight(getEnv("SITE_URL", "https://imperialremodel.com"), "/"),
		BrandName: getEnv("BRAND_NAME", "Imperial Home Remodeling"),
		// SMTP Configuration
		SMTPHost:      getEnv("SMTP_HOST", "smtpout.secureserver.net"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail: getEnv("SMTP_FROM_EMAIL", "noreply@imperialremodel.com"),
		LeadEmailTo:   getEnv("LEAD_EMAIL_TO", "info@imperialremodel.com"),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),    // 1 minute window
		RateLimitContactThreshold: getEnvInt("RATE_LIMIT_CONTACT_THRESHOLD", 10), // 10 submissions per window
		RateLimitGlobalThreshold:  getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100), // 100 requests per window
		// Mail dispatch
		MailSendTimeoutSeconds: getEnvInt("MAIL_SEND_TIMEOUT_SECONDS", 10),
	}

	if cfg.SMTPUsername == "" || cfg.SMTPPassword == "" {
		log.Println("WARNING: SMTP credentials are missing. Contact form dispatch will be unavailable.")
	}

	// Log Redis configuration status (helpful for debugging)
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

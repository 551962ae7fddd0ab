package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries the fixed batch parameters shared by the curator and
// the mailer. Defaults reproduce the production SBLP setup; environment
// variables override them when testing against another relay.
type Config struct {
	// SMTP
	SMTPHost string
	SMTPPort int

	// Message
	Sender  string
	Subject string

	// Rate limiting
	SendDelay time.Duration

	// Country handling
	TargetCountry   string
	CountryFallback string
}

// Load reads configuration from the environment, loading a .env file
// first if one exists.
func Load() *Config {
	// Load .env file if it exists (don't error if missing)
	_ = godotenv.Load()

	return &Config{
		SMTPHost: getEnv("SMTP_HOST", "smtp.dcc.ufmg.br"),
		SMTPPort: getEnvInt("SMTP_PORT", 587),

		Sender:  getEnv("SENDER_ADDR", "fernando@dcc.ufmg.br"),
		Subject: getEnv("MAIL_SUBJECT", "Chamada de Trabalhos: SBLP 2026"),

		SendDelay: getEnvDuration("SEND_DELAY", 2*time.Second),

		TargetCountry:   getEnv("TARGET_COUNTRY", "br"),
		CountryFallback: getEnv("COUNTRY_FALLBACK", "br"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageMongo  = "mongo"
	StorageMemory = "memory"
)

type Config struct {
	Port              string
	DBAddress         string
	DBName            string
	Storage           string
	JWTSecret         string
	TokenTTL          time.Duration
	SendGridKey       string
	MailFromName      string
	MailFromAddress   string
	OpenAIKey         string
	CorsOrigins       []string
	BookingRatePerSec float64
	BookingRateBurst  int
	RunJobs           bool
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Config: no .env file loaded: %v\n", err)
	}
	cfg := &Config{
		Port:              env("PORT", "8080"),
		DBAddress:         env("DB_ADDRESS", "mongodb://localhost:27017"),
		DBName:            env("DB_NAME", "MentorConnect"),
		Storage:           env("STORAGE", StorageMongo),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		TokenTTL:          envDuration("TOKEN_TTL", 24*time.Hour),
		SendGridKey:       os.Getenv("SEND_GRID_KEY"),
		MailFromName:      env("MAIL_FROM_NAME", "Mentor Connect"),
		MailFromAddress:   env("MAIL_FROM", "no-reply@mentorconnect.app"),
		OpenAIKey:         os.Getenv("OPENAI_API_KEY"),
		CorsOrigins:       strings.Split(env("CORS_ORIGINS", "http://localhost:3000"), ","),
		BookingRatePerSec: envFloat("BOOKING_RATE_PER_SEC", 1),
		BookingRateBurst:  envInt("BOOKING_RATE_BURST", 5),
		RunJobs:           env("RUN_JOBS", "true") == "true",
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.Storage != StorageMongo && c.Storage != StorageMemory {
		return errors.New("STORAGE must be " + StorageMongo + " or " + StorageMemory)
	}
	return nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func envFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

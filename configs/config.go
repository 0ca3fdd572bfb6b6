package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource     string
	Port         string
	JWTSecret    string
	JWTTTL       time.Duration
	RulesRefresh time.Duration
}

var dotenvOnce bool

func LoadConfig() *Config {
	if !dotenvOnce {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file, using environment")
		}
		dotenvOnce = true
	}

	refreshSec := 60
	if v, err := strconv.Atoi(getEnv("RULES_REFRESH_SECONDS", "60")); err == nil && v > 0 {
		refreshSec = v
	}

	return &Config{
		DBSource:     getEnv("DB_SOURCE", "pizza.db"),
		Port:         getEnv("PORT", "8000"),
		JWTSecret:    getEnv("JWT_SECRET", "changeme"),
		JWTTTL:       time.Duration(24) * time.Hour,
		RulesRefresh: time.Duration(refreshSec) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

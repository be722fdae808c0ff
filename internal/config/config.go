package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port         string
	DBDSN        string
	JWTSecret    string
	LogFile      string
	LoginRateMax int
	CookieSecure bool
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "apartmart.db" // sqlite file in project root
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
		log.Println("[config] JWT_SECRET not set, using insecure dev default")
	}
	logFile := os.Getenv("LOG_FILE")

	rateMax := 10
	if v := os.Getenv("LOGIN_RATE_MAX"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			rateMax = n
		}
	}
	secure := os.Getenv("COOKIE_SECURE") == "true"

	cfg := Config{Port: port, DBDSN: dsn, JWTSecret: secret, LogFile: logFile, LoginRateMax: rateMax, CookieSecure: secure}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s LOGIN_RATE_MAX=%d COOKIE_SECURE=%v",
		cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.LoginRateMax, cfg.CookieSecure)
	return cfg
}

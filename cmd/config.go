package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrJWTSecretIsRequired = errors.New("JWT_SECRET is required")

type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	JWTSecret            string
	KafkaHost            string
	KafkaLoadEventsTopic string
	OfferSweepSchedule   string
	LogLevel             string
}

// LoadConfig reads the process environment. A .env file in the working directory is
// loaded first when present; variables already set in the environment win.
func LoadConfig() (Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("KAFKA_LOAD_EVENTS_TOPIC", "load-events")
	v.SetDefault("OFFER_SWEEP_SCHEDULE", "0 */5 * * * *")
	v.SetDefault("LOG_LEVEL", "info")

	cfg := Config{
		HTTPPort:             v.GetString("HTTP_PORT"),
		DBHost:               v.GetString("DB_HOST"),
		DBPort:               v.GetString("DB_PORT"),
		DBUser:               v.GetString("DB_USER"),
		DBPassword:           v.GetString("DB_PASSWORD"),
		DBName:               v.GetString("DB_NAME"),
		DBSslMode:            v.GetString("DB_SSLMODE"),
		JWTSecret:            v.GetString("JWT_SECRET"),
		KafkaHost:            v.GetString("KAFKA_HOST"),
		KafkaLoadEventsTopic: v.GetString("KAFKA_LOAD_EVENTS_TOPIC"),
		OfferSweepSchedule:   v.GetString("OFFER_SWEEP_SCHEDULE"),
		LogLevel:             v.GetString("LOG_LEVEL"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, ErrJWTSecretIsRequired
	}
	return cfg, nil
}

// DSN builds the postgres connection URL shared by migrations and gorm.
func (c Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     fmt.Sprintf("%s:%s", c.DBHost, c.DBPort),
		Path:     c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSslMode}}.Encode(),
	}
	return u.String()
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

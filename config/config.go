package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                int           `env:"PORT" default:"8080"`
	Dsn                 string        `env:"DSN" default:"localhost:5432"`
	JwtSecret           string        `env:"JWT_SECRET"`
	JwtExpires          string        `env:"JWT_EXPIRES"`
	RefreshSecret       string        `env:"REFRESH_SECRET"`
	RefreshExpiry       string        `env:"REFRESH_EXPIRY"`
	AlarmSweepInterval  time.Duration `env:"ALARM_SWEEP_INTERVAL" envDefault:"1h"`
	CloudinaryCloudName string        `env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string        `env:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string        `env:"CLOUDINARY_API_SECRET"`
}

func New() *Config {
	if loadErr := godotenv.Load(".env"); loadErr != nil {
		log.Printf("[Env]: unable to load .env file %v", loadErr)
	}

	var cfg Config

	if parseErr := env.Parse(&cfg); parseErr != nil {
		log.Printf("[Env]: failed to parse environment variables: %v", parseErr)
	}

	return &cfg
}

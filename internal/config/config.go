package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Env          string
	ServerPort   string
	DatabaseURL  string
	ClientURL    string
	KafkaAddress string
	ESURL        string
	ESUser       string
	ESPassword   string
	LogLevel     string
}

func (c *Config) Production() bool {
	return c.Env == "production"
}

func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	return &Config{
		Env:          getDefault("ENV", "development"),
		ServerPort:   getDefault("SERVER_PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		ClientURL:    getDefault("CLIENT_URL", "http://localhost:3000"),
		KafkaAddress: os.Getenv("KAFKA_ADDRESS"),
		ESURL:        os.Getenv("ES_URL"),
		ESUser:       os.Getenv("ES_USER"),
		ESPassword:   os.Getenv("ES_PASSWORD"),
		LogLevel:     os.Getenv("LOG_LEVEL"),
	}
}

func getDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

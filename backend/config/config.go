package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort     string
	JWTSecret      string
	AllowedOrigins string

	// memory, redis или dynamo
	StoreDriver string

	AWSRegion      string
	DynamoTable    string
	DynamoEndpoint string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		JWTSecret:      getEnv("JWT_SECRET", "secret"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		StoreDriver:    getEnv("STORE_DRIVER", "dynamo"),
		AWSRegion:      getEnv("AWS_REGION", "eu-central-1"),
		DynamoTable:    getEnv("DYNAMO_TABLE_NAME", "learning_dashboard"),
		DynamoEndpoint: getEnv("DYNAMO_ENDPOINT", ""),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvInt("REDIS_DB", 0),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

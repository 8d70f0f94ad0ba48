package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendDynamoDB = "dynamodb"
)

type Config struct {
	Backend        string
	DataDir        string
	DatabaseURL    string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisPrefix    string
	DynamoTable    string
	DynamoEndpoint string
	AWSRegion      string
	AWSAccessKeyID string
	AWSSecretKey   string
	LogLevel       string
	LogFormat      string
}

// Load reads the environment after applying a .env file from the working
// directory, if there is one. Variables already set take precedence.
func Load() Config {
	godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil || redisDB < 0 {
		redisDB = 0
	}

	cfg := Config{
		Backend:        strings.ToLower(getEnv("SQUOTE_BACKEND", BackendFile)),
		DataDir:        getEnv("SQUOTE_DATA_DIR", defaultDataDir()),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisAddr:      getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        redisDB,
		RedisPrefix:    getEnv("REDIS_PREFIX", "squote:"),
		DynamoTable:    getEnv("DYNAMODB_TABLE", "squote_kv"),
		DynamoEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID: os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretKey:   os.Getenv("AWS_SECRET_ACCESS_KEY"),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", "warn")),
		LogFormat:      strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	return cfg
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return ".squote"
	}
	return filepath.Join(dir, "squote")
}

func getEnv(key string, fallback string) string {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	return val
}

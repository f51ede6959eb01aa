package configs

import (
	"fmt"
	"os"
)

type Config struct {
	AppPort string

	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	RedisHost string
	RedisPort string

	KafkaBrokers   string
	KafkaTopic     string
	KafkaPostTopic string

	AutoMigrate bool
}

func LoadConfig() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", ":8080"),

		DBHost: getEnv("DB_HOST", "localhost"),
		DBPort: getEnv("DB_PORT", "5432"),
		DBUser: getEnv("DB_USER", "postgres"),
		DBPass: getEnv("DB_PASS", "postgres"),
		DBName: getEnv("DB_NAME", "social_db"),

		RedisHost: getEnv("REDIS_HOST", "localhost"),
		RedisPort: getEnv("REDIS_PORT", "6379"),

		KafkaBrokers:   os.Getenv("KAFKA_BOOTSTRAP_SERVERS"),
		KafkaTopic:     getEnv("KAFKA_TOPIC_NOTIFICATIONS", "notifications.created"),
		KafkaPostTopic: getEnv("KAFKA_TOPIC_POSTS", "posts.created"),

		AutoMigrate: os.Getenv("AUTO_MIGRATE") == "true",
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName,
	)
}

func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Server   ServerConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
	Corpus   CorpusConfig
	Quiz     QuizConfig
	Telegram TelegramConfig
	VK       VKConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type RabbitMQConfig struct {
	URI      string
	Exchange string
}

type CorpusConfig struct {
	Directory string
	Pattern   string
	FileLimit int
	Encoding  string
}

type QuizConfig struct {
	GradeThreshold int
}

type TelegramConfig struct {
	BotToken string
}

type VKConfig struct {
	BotToken     string
	GroupID      int64
	Confirmation string
	Secret       string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Host: getEnv("HOST", "0.0.0.0"),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PWD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			URI:      getEnv("RABBITMQ_URI", ""),
			Exchange: getEnv("RABBITMQ_EXCHANGE", ""),
		},
		Corpus: CorpusConfig{
			Directory: getEnv("QUIZ_DIR", "quiz_textfiles"),
			Pattern:   getEnv("QUIZ_PATTERN", "*.txt"),
			FileLimit: getEnvAsInt("QUIZ_FILE_LIMIT", 5),
			Encoding:  getEnv("QUIZ_ENCODING", "koi8-r"),
		},
		Quiz: QuizConfig{
			GradeThreshold: getEnvAsInt("GRADE_THRESHOLD", 90),
		},
		Telegram: TelegramConfig{
			BotToken: getEnv("TG_BOT_TOKEN", ""),
		},
		VK: VKConfig{
			BotToken:     getEnv("VK_BOT_TOKEN", ""),
			GroupID:      getEnvAsInt64("VK_GROUP_ID", 0),
			Confirmation: getEnv("VK_CONFIRMATION", ""),
			Secret:       getEnv("VK_SECRET", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		n, err := strconv.Atoi(value)
		if err != nil {
			log.Printf("Invalid int env var %s: %v", key, err)
			return defaultValue
		}
		return n
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			log.Printf("Invalid int env var %s: %v", key, err)
			return defaultValue
		}
		return n
	}
	return defaultValue
}

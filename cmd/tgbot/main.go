package main

import (
	"log"

	"quiz-bot/internal/config"
	"quiz-bot/internal/corpus"
	"quiz-bot/internal/db"
	"quiz-bot/internal/event"
	"quiz-bot/internal/grading"
	"quiz-bot/internal/repository"
	"quiz-bot/internal/service"
	"quiz-bot/internal/telegram"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()
	if cfg.Telegram.BotToken == "" {
		log.Fatal("TG_BOT_TOKEN is required")
	}

	client, err := db.NewRedis(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatalf("Failed to connect to store: %v", err)
	}
	defer client.Close()

	enc, err := corpus.EncodingByName(cfg.Corpus.Encoding)
	if err != nil {
		log.Fatal(err)
	}
	collection, err := corpus.Load(cfg.Corpus.Directory, cfg.Corpus.Pattern, cfg.Corpus.FileLimit, enc)
	if err != nil {
		log.Fatalf("Failed to load quiz corpus: %v", err)
	}
	log.Printf("Loaded %d quiz records from %s", collection.Len(), cfg.Corpus.Directory)

	scores := service.NewScoreService(repository.NewScoreRepository(client))
	sessions := service.NewSessionService(
		collection,
		repository.NewSessionRepository(client),
		scores,
		grading.NewGrader(cfg.Quiz.GradeThreshold),
	)

	if cfg.RabbitMQ.URI != "" && cfg.RabbitMQ.Exchange != "" {
		publisher, err := event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
		sessions.SetEventPublisher(publisher)
	} else {
		log.Println("RabbitMQ not configured, turn events will not be published")
	}

	bot, err := telegram.NewBot(cfg.Telegram.BotToken, sessions)
	if err != nil {
		log.Fatalf("Failed to start telegram bot: %v", err)
	}

	log.Println("Telegram quiz bot is starting...")
	bot.Start()
}

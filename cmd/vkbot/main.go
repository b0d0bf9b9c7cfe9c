package main

import (
	"log"
	"net/http"
	"time"

	"quiz-bot/internal/config"
	"quiz-bot/internal/db"
	"quiz-bot/internal/event"
	"quiz-bot/internal/grading"
	"quiz-bot/internal/handlers"
	"quiz-bot/internal/repository"
	"quiz-bot/internal/service"
	"quiz-bot/internal/vk"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()
	if cfg.VK.BotToken == "" {
		log.Fatal("VK_BOT_TOKEN is required")
	}
	if cfg.VK.Confirmation == "" {
		log.Fatal("VK_CONFIRMATION is required")
	}

	client, err := db.NewRedis(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatalf("Failed to connect to store: %v", err)
	}
	defer client.Close()

	// The VK bot serves the store-resident corpus; run cmd/populate first.
	questions := repository.NewQuestionRepository(client)
	scores := service.NewScoreService(repository.NewScoreRepository(client))
	sessions := service.NewSessionService(
		questions,
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

	vkHandler := handlers.NewVKHandler(
		sessions,
		vk.NewClient(cfg.VK.BotToken),
		cfg.VK.Confirmation,
		cfg.VK.Secret,
	)
	scoreHandler := handlers.NewScoreHandler(scores)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Cache-Control"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/vk/callback", vkHandler.HandleCallback)

	public := r.Group("/public/quiz")
	{
		public.GET("/score/:platform/:user", scoreHandler.GetScore)
	}

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	log.Printf("VK quiz bot listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

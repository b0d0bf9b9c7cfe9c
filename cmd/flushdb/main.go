// Command flushdb wipes the quiz store. Never run it against a store with
// active user sessions: their answers and scores go with it.
package main

import (
	"context"
	"log"

	"quiz-bot/internal/config"
	"quiz-bot/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()

	client, err := db.NewRedis(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatalf("Failed to connect to store: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	if err := client.FlushAll(ctx).Err(); err != nil {
		log.Fatalf("Failed to flush store: %v", err)
	}
	size, err := client.DBSize(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to read store size: %v", err)
	}
	log.Printf("Number of DB records is %d", size)
}

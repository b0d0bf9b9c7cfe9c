// Command populate parses the quiz corpus and loads it into the store for
// bots serving the store-resident corpus.
package main

import (
	"context"
	"flag"
	"log"

	"quiz-bot/internal/config"
	"quiz-bot/internal/corpus"
	"quiz-bot/internal/db"
	"quiz-bot/internal/repository"

	"github.com/joho/godotenv"
)

func main() {
	number := flag.Int("number", 0, "number of corpus files to load (0 = config default)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()
	if *number > 0 {
		cfg.Corpus.FileLimit = *number
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

	ctx := context.Background()
	if err := repository.NewQuestionRepository(client).SaveAll(ctx, collection.Records()); err != nil {
		log.Fatalf("Failed to save questions: %v", err)
	}

	size, err := client.DBSize(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to read store size: %v", err)
	}
	log.Printf("Saved %d questions, number of DB records is %d", collection.Len(), size)
}

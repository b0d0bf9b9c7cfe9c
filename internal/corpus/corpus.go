package corpus

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"path/filepath"

	"quiz-bot/internal/models"

	"golang.org/x/text/encoding"
)

// ErrEmptyCorpus means no records could be loaded. Serving with an empty
// corpus is a startup error, never a runtime condition.
var ErrEmptyCorpus = errors.New("corpus is empty")

// Collection is an in-memory corpus. Duplicate questions coming from
// different files are kept as-is, so questions that appear in several files
// are proportionally more likely to be picked.
type Collection struct {
	records []models.QuizRecord
}

func NewCollection(records []models.QuizRecord) (*Collection, error) {
	if len(records) == 0 {
		return nil, ErrEmptyCorpus
	}
	return &Collection{records: records}, nil
}

// Len reports the number of loaded records.
func (c *Collection) Len() int { return len(c.records) }

// Random picks a uniformly random record. Safe for concurrent turns, the
// shared rand source is locked.
func (c *Collection) Random() models.QuizRecord {
	return c.records[rand.Intn(len(c.records))]
}

// RandomQuestion lets the collection serve as the session service's
// question source next to the store-resident corpus.
func (c *Collection) RandomQuestion(ctx context.Context) (models.QuizRecord, error) {
	return c.Random(), nil
}

// Records returns the loaded records in load order.
func (c *Collection) Records() []models.QuizRecord { return c.records }

// Load builds a collection from up to fileLimit corpus files matching
// pattern under dir. Files are shuffled before the limit is applied, so
// repeated runs draw from different parts of a large corpus. A file that
// cannot be read or decoded is skipped and logged; Load fails only when
// nothing at all could be loaded.
func Load(dir, pattern string, fileLimit int, enc encoding.Encoding) (*Collection, error) {
	if pattern == "" {
		pattern = "*.txt"
	}
	files, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, err
	}

	rand.Shuffle(len(files), func(i, j int) {
		files[i], files[j] = files[j], files[i]
	})
	if fileLimit > 0 && fileLimit < len(files) {
		files = files[:fileLimit]
	}

	var records []models.QuizRecord
	for _, path := range files {
		parsed, err := ParseFile(path, enc)
		if err != nil {
			log.Printf("Skipping corpus file: %v", err)
			continue
		}
		records = append(records, parsed...)
	}

	return NewCollection(records)
}

package corpus

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"quiz-bot/internal/models"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
)

// Corpus files are KOI8-R by default; the encoding is configurable for
// corpora in other single-byte charsets.
var DefaultEncoding encoding.Encoding = charmap.KOI8R

// recordPattern matches one quiz record: a numbered question marker, the
// question body, the answer marker, the answer body, and one of the trailer
// labels that terminates the answer. Bodies are matched non-greedy so each
// spans the shortest stretch up to the next marker.
var recordPattern = regexp.MustCompile(
	`Вопрос \d+: (.+?) Ответ: (.+?) (?:Автор|Источник|Комментарий|Зачет):`,
)

// ReadError reports a corpus file that could not be opened or decoded.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read corpus file %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Parse extracts question/answer records from already-decoded corpus text.
// Paragraph breaks and embedded newlines are collapsed to single spaces
// first so multi-line bodies match as one contiguous string.
func Parse(text string) []models.QuizRecord {
	text = strings.ReplaceAll(text, "\n\n", "\n")
	text = strings.ReplaceAll(text, "\n", " ")

	matches := recordPattern.FindAllStringSubmatch(text, -1)
	records := make([]models.QuizRecord, 0, len(matches))
	for _, m := range matches {
		records = append(records, models.QuizRecord{
			Question: strings.TrimSpace(m[1]),
			Answer:   strings.TrimSpace(m[2]),
		})
	}
	return records
}

// ParseFile reads and decodes one corpus file. A missing or undecodable
// file yields a *ReadError naming it; the multi-file loader skips such
// files, a single-file caller treats the error as fatal.
func ParseFile(path string, enc encoding.Encoding) ([]models.QuizRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	if enc == nil {
		enc = DefaultEncoding
	}
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return Parse(string(decoded)), nil
}

// EncodingByName resolves an IANA charset name ("koi8-r", "windows-1251")
// to an encoding. An empty name selects the default.
func EncodingByName(name string) (encoding.Encoding, error) {
	if name == "" {
		return DefaultEncoding, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown corpus encoding %q: %w", name, err)
	}
	return enc, nil
}

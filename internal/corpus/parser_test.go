package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

const sampleText = `Чемпионат чего-то там.

Вопрос 1:
Эта столица
Франции носит имя.
Ответ:
Париж. (география)
Автор:
Кто-то

Вопрос 2: Сколько будет дважды два? Ответ: Четыре Источник: Учебник

Вопрос 3: Какого цвета небо? Ответ: Синее Комментарий: Днем

Вопрос 4: Сколько ног у паука? Ответ: Восемь Зачет: 8
`

func TestParse(t *testing.T) {
	records := Parse(sampleText)

	if len(records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(records))
	}

	if records[0].Question != "Эта столица Франции носит имя." {
		t.Errorf("multi-line question not collapsed: %q", records[0].Question)
	}
	if records[0].Answer != "Париж. (география)" {
		t.Errorf("unexpected answer: %q", records[0].Answer)
	}
	if records[0].ExpectedAnswer() != "Париж" {
		t.Errorf("annotation not stripped: %q", records[0].ExpectedAnswer())
	}

	// Bodies are the shortest span up to the next marker.
	if records[1].Answer != "Четыре" {
		t.Errorf("answer should stop at the trailer marker, got %q", records[1].Answer)
	}
}

func TestParseRecordsCarryNoMarkers(t *testing.T) {
	markers := []string{"Вопрос ", "Ответ:", "Автор:", "Источник:", "Комментарий:", "Зачет:"}

	for i, record := range Parse(sampleText) {
		if record.Question == "" || record.Answer == "" {
			t.Fatalf("record %d has an empty field", i)
		}
		for _, marker := range markers {
			if strings.Contains(record.Question, marker) {
				t.Errorf("record %d question contains marker %q", i, marker)
			}
			if strings.Contains(record.Answer, marker) {
				t.Errorf("record %d answer contains marker %q", i, marker)
			}
		}
	}
}

func TestParseEmptyText(t *testing.T) {
	if records := Parse("ничего похожего на вопросы"); len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestParseFileKOI8R(t *testing.T) {
	encoded, err := charmap.KOI8R.NewEncoder().String(sampleText)
	if err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}
	path := filepath.Join(t.TempDir(), "quiz.txt")
	if err := os.WriteFile(path, []byte(encoded), 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := ParseFile(path, nil) // nil selects the KOI8-R default
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(records))
	}
	if records[0].ExpectedAnswer() != "Париж" {
		t.Errorf("decoded answer mismatch: %q", records[0].ExpectedAnswer())
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.txt"), nil)
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("expected *ReadError, got %T", err)
	}
	if !strings.Contains(readErr.Error(), "missing.txt") {
		t.Errorf("error should name the file: %v", readErr)
	}
}

func TestEncodingByName(t *testing.T) {
	for _, name := range []string{"", "koi8-r", "windows-1251", "utf-8"} {
		if _, err := EncodingByName(name); err != nil {
			t.Errorf("EncodingByName(%q) failed: %v", name, err)
		}
	}
	if _, err := EncodingByName("klingon"); err == nil {
		t.Error("expected an error for an unknown encoding")
	}
}

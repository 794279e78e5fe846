package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/layoutstat/internal/layout"
)

const qwerty = "qwertyuiopasdfghjkl;zxcvbnm,./ *"

func mustTable(t *testing.T) *layout.Table {
	t.Helper()
	table, err := layout.Build(qwerty)
	if err != nil {
		t.Fatalf("build layout: %v", err)
	}
	return table
}

func TestSanitize(t *testing.T) {
	out, dropped := Sanitize("Hello,\nWorld!", mustTable(t))
	if out != "hello, world" {
		t.Fatalf("unexpected sanitized text: %q", out)
	}
	if dropped != 1 {
		t.Fatalf("expected 1 dropped byte, got %d", dropped)
	}
}

func TestLoadWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("# header\nThe\n\nquick\n"), 0o644); err != nil {
		t.Fatalf("write words: %v", err)
	}
	words, err := LoadWords(path)
	if err != nil {
		t.Fatalf("LoadWords failed: %v", err)
	}
	if strings.Join(words, ",") != "the,quick" {
		t.Fatalf("unexpected words: %v", words)
	}
}

func TestLoadRejectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write corpus: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for empty corpus")
	}
}

func TestTypeableOn(t *testing.T) {
	keep := TypeableOn(mustTable(t))
	words := Filter([]string{"hello", "naïve", "", "co-op", "a.b"}, keep)
	if strings.Join(words, ",") != "hello,a.b" {
		t.Fatalf("unexpected filtered words: %v", words)
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	words := []string{"the", "of", "and", "layout"}
	a := NewGenerator(42).Sample(words, 50)
	b := NewGenerator(42).Sample(words, 50)
	if a != b {
		t.Fatalf("expected identical samples for identical seeds")
	}
	if got := len(strings.Fields(a)); got != 50 {
		t.Fatalf("expected 50 words, got %d", got)
	}
	if NewGenerator(1).Sample(nil, 10) != "" {
		t.Fatalf("expected empty sample for empty word list")
	}
}

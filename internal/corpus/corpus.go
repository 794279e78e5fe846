// Package corpus loads and prepares text for analysis.
package corpus

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/verte-zerg/layoutstat/internal/layout"
)

// Load reads a corpus file.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", fmt.Errorf("corpus is empty")
	}
	return string(data), nil
}

// LoadWords reads one word per line from the provided file path. Blank
// lines and lines starting with '#' are skipped.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.ToLower(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

// Sanitize rewrites text so every byte is typeable on the layout.
// Upper-case ASCII letters fold to lower case when only the lower case is
// mapped, whitespace folds to a space when space is mapped, and anything
// else the layout cannot type is dropped. It returns the number of
// dropped bytes.
func Sanitize(text string, table *layout.Table) (string, int) {
	var b strings.Builder
	b.Grow(len(text))
	dropped := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case table.Has(c):
		case c >= 'A' && c <= 'Z' && table.Has(c+'a'-'A'):
			c += 'a' - 'A'
		case (c == '\n' || c == '\r' || c == '\t') && table.Has(' '):
			c = ' '
		default:
			dropped++
			continue
		}
		b.WriteByte(c)
	}
	return b.String(), dropped
}

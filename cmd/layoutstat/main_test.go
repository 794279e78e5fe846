package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/layoutstat/internal/config"
	"github.com/verte-zerg/layoutstat/internal/layout"
	"github.com/verte-zerg/layoutstat/internal/model"
)

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	var cfg config.FileConfig
	if _, err := toml.Decode(defaultConfigTemplate(), &cfg); err != nil {
		t.Fatalf("template does not decode: %v", err)
	}
	if cfg.Analyze.Layout != nil {
		t.Fatalf("expected commented template to leave values unset")
	}
	if !strings.Contains(defaultConfigTemplate(), `layout = "qwerty"`) {
		t.Fatalf("template missing default layout")
	}
}

func TestValidateConfig(t *testing.T) {
	valid := model.AnalyzeConfig{Layout: "qwerty", CorpusPath: "corpus.txt", Top: 10}
	if err := validateConfig(valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cases := []model.AnalyzeConfig{
		{Layout: "", CorpusPath: "corpus.txt"},
		{Layout: "qwerty", CorpusPath: "corpus.txt", Top: -1},
		{Layout: "qwerty", WordlistPath: "words.txt", Sample: 0},
		{Layout: "qwerty"},
	}
	for i, cfg := range cases {
		if err := validateConfig(cfg); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}

func TestApplyConfigRespectsChangedFlags(t *testing.T) {
	var target string
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&target, "layout", "qwerty", "")

	fromFile := "dvorak"
	applyStringConfig(cmd, "layout", &target, &fromFile)
	if target != "dvorak" {
		t.Fatalf("expected config value, got %q", target)
	}

	if err := cmd.Flags().Set("layout", "workman"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	applyStringConfig(cmd, "layout", &target, &fromFile)
	if target != "workman" {
		t.Fatalf("expected explicit flag to win, got %q", target)
	}
}

func TestLayoutLinesAligned(t *testing.T) {
	catalog := map[string]layout.Definition{
		"qwerty": {Name: "qwerty", Keys: "qwertyuiopasdfghjkl;zxcvbnm,./ *", Description: "classic"},
		"mine":   {Name: "mine", Keys: "qwfpbjluy;arstgmneiozxcdvkh,./ *"},
	}
	lines := layoutLines(catalog)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "mine    qwfpbjluy;arstgmneiozxcdvkh,./ *" {
		t.Fatalf("unexpected line: %q", lines[0])
	}
	if lines[1] != "qwerty  qwertyuiopasdfghjkl;zxcvbnm,./ *  classic" {
		t.Fatalf("unexpected line: %q", lines[1])
	}
}

func TestParseSince(t *testing.T) {
	since, err := parseSince("")
	if err != nil || since != nil {
		t.Fatalf("expected nil for empty value")
	}
	since, err = parseSince("2024-03-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if since.Year() != 2024 || since.Month() != 3 || since.Day() != 1 {
		t.Fatalf("unexpected date: %v", since)
	}
	if _, err := parseSince("03/01/2024"); err == nil {
		t.Fatalf("expected error for bad date")
	}
}

func TestWriteCorpus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "corpus.txt")
	if err := writeCorpus(path, "the quick fox"); err != nil {
		t.Fatalf("writeCorpus failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read corpus: %v", err)
	}
	if string(data) != "the quick fox\n" {
		t.Fatalf("unexpected corpus: %q", string(data))
	}
}

func TestAnalyzeSetupRunsBuiltinLayout(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	corpusPath := filepath.Join(dir, "corpus.txt")
	if err := os.WriteFile(corpusPath, []byte("Hello, World!\nthe end"), 0o644); err != nil {
		t.Fatalf("write corpus: %v", err)
	}

	cmd := &cobra.Command{Use: "test"}
	addAnalyzeFlags(cmd)
	if err := cmd.Flags().Set("corpus", corpusPath); err != nil {
		t.Fatalf("set corpus: %v", err)
	}
	if err := cmd.Flags().Set("ngram", "sfb"); err != nil {
		t.Fatalf("set ngram: %v", err)
	}
	setup, err := loadAnalysisSetup(cmd)
	if err != nil {
		t.Fatalf("loadAnalysisSetup failed: %v", err)
	}
	res, err := setup.analyze("qwerty")
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if res.def.Name != "qwerty" || res.stats.Chars == 0 {
		t.Fatalf("unexpected result: %s chars=%d", res.def.Name, res.stats.Chars)
	}
	if setup.run(res).Category != model.SFB {
		t.Fatalf("expected run category sfb")
	}
}

func TestMagicFlagDescribesRepeatCollapse(t *testing.T) {
	flag := newRootCmd().Flags().Lookup("magic")
	if flag == nil {
		t.Fatalf("missing --magic flag")
	}
	if !strings.Contains(flag.Usage, "doubled character") {
		t.Fatalf("expected --magic help to mention doubled characters: %q", flag.Usage)
	}
	if !strings.Contains(defaultConfigTemplate(), "doubled letters collapse") {
		t.Fatalf("expected config template to mention doubled letters")
	}
}

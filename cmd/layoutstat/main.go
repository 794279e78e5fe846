// Package main provides the CLI entrypoint for layoutstat.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/layoutstat/internal/analyzer"
	"github.com/verte-zerg/layoutstat/internal/browse"
	"github.com/verte-zerg/layoutstat/internal/config"
	"github.com/verte-zerg/layoutstat/internal/corpus"
	"github.com/verte-zerg/layoutstat/internal/layout"
	"github.com/verte-zerg/layoutstat/internal/model"
	"github.com/verte-zerg/layoutstat/internal/stats"
	"github.com/verte-zerg/layoutstat/internal/store"
)

const (
	defaultLayout = "qwerty"
	defaultTop    = 10
	defaultSample = 5000
	defaultFormat = "text"
)

var (
	analyzeLayout           string
	analyzeCorpus           string
	analyzeWordlist         string
	analyzeSample           int
	analyzeSeed             int64
	analyzeNgram            string
	analyzeTop              int
	analyzeMagic            bool
	analyzeIncludeThumbAlt  bool
	analyzeIncludeThumbRoll bool
	analyzeEpicInequality   bool
	analyzeSanitize         bool
	analyzeSave             bool
	analyzeFormat           string
	analyzeColor            bool
	analyzeVerbose          bool

	historyLayout string
	historySince  string
	historyLast   int

	sampleOut   string
	sampleForce bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "layoutstat",
		Short:         "Keyboard layout ergonomics analyzer",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runAnalyzeCmd,
	}
	addAnalyzeFlags(rootCmd)
	rootCmd.Flags().BoolVar(&analyzeSave, "save", false, "store the run in the history database")
	rootCmd.Flags().StringVar(&analyzeFormat, "format", defaultFormat, "output format: text, json or yaml")
	rootCmd.Flags().BoolVar(&analyzeColor, "color", false, "force colored heatmap output")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLayoutsCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newCompareCmd())
	rootCmd.AddCommand(newSampleCmd())

	return rootCmd
}

func addAnalyzeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&analyzeLayout, "layout", defaultLayout, "layout name or literal 32-character layout")
	cmd.Flags().StringVar(&analyzeCorpus, "corpus", config.DefaultCorpusPath(), "corpus file")
	cmd.Flags().StringVar(&analyzeWordlist, "wordlist", "", "sample a synthetic corpus from this word list instead of --corpus")
	cmd.Flags().IntVar(&analyzeSample, "sample", defaultSample, "words to sample with --wordlist")
	cmd.Flags().Int64Var(&analyzeSeed, "seed", 0, "sampling seed (0 uses the clock)")
	cmd.Flags().StringVar(&analyzeNgram, "ngram", "", "record n-grams of this category (sfb, sfs, inroll, ...)")
	cmd.Flags().IntVar(&analyzeTop, "top", defaultTop, "number of n-grams to show")
	cmd.Flags().BoolVar(&analyzeMagic, "magic", false, "enable digraph (magic key) preprocessing; without [magic] rules every doubled character becomes character plus filler")
	cmd.Flags().BoolVar(&analyzeIncludeThumbAlt, "include-thumb-alt", false, "count alternations involving a thumb")
	cmd.Flags().BoolVar(&analyzeIncludeThumbRoll, "include-thumb-roll", false, "count rolls involving a thumb")
	cmd.Flags().BoolVar(&analyzeEpicInequality, "epic-inequality", false, "advance the skipgram anchor on any hand change")
	cmd.Flags().BoolVar(&analyzeSanitize, "sanitize", true, "fold case and drop characters the layout cannot type")
	cmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "print progress to stderr")
}

// analysisSetup is everything needed to analyse one or more layouts over
// the same corpus.
type analysisSetup struct {
	cfg     model.AnalyzeConfig
	file    config.FileConfig
	catalog map[string]layout.Definition
	weights model.Weights
	magic   map[byte]byte
	text    string
}

// result is one analysed layout.
type result struct {
	def   layout.Definition
	stats *model.Stats
}

func loadAnalysisSetup(cmd *cobra.Command) (*analysisSetup, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "layout", &analyzeLayout, fileCfg.Analyze.Layout)
	applyStringConfig(cmd, "corpus", &analyzeCorpus, fileCfg.Analyze.Corpus)
	applyStringConfig(cmd, "ngram", &analyzeNgram, fileCfg.Analyze.Ngram)
	applyIntConfig(cmd, "top", &analyzeTop, fileCfg.Analyze.Top)
	applyBoolConfig(cmd, "magic", &analyzeMagic, fileCfg.Analyze.Magic)
	applyBoolConfig(cmd, "include-thumb-alt", &analyzeIncludeThumbAlt, fileCfg.Analyze.IncludeThumbAlt)
	applyBoolConfig(cmd, "include-thumb-roll", &analyzeIncludeThumbRoll, fileCfg.Analyze.IncludeThumbRoll)
	applyBoolConfig(cmd, "epic-inequality", &analyzeEpicInequality, fileCfg.Analyze.EpicInequality)
	applyBoolConfig(cmd, "sanitize", &analyzeSanitize, fileCfg.Analyze.Sanitize)

	category, err := model.ParseCategory(analyzeNgram)
	if err != nil {
		return nil, fmt.Errorf("invalid --ngram: %w", err)
	}
	cfg := model.AnalyzeConfig{
		Layout:           analyzeLayout,
		CorpusPath:       analyzeCorpus,
		WordlistPath:     analyzeWordlist,
		Sample:           analyzeSample,
		Seed:             analyzeSeed,
		Category:         category,
		Top:              analyzeTop,
		Magic:            analyzeMagic,
		IncludeThumbAlt:  analyzeIncludeThumbAlt,
		IncludeThumbRoll: analyzeIncludeThumbRoll,
		EpicInequality:   analyzeEpicInequality,
		Sanitize:         analyzeSanitize,
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	catalog, err := layout.Catalog(fileCfg.Layouts)
	if err != nil {
		return nil, fmt.Errorf("failed to load layouts: %w", err)
	}
	magic, err := layout.MagicRules(fileCfg.Magic)
	if err != nil {
		return nil, fmt.Errorf("invalid [magic] config: %w", err)
	}
	return &analysisSetup{
		cfg:     cfg,
		file:    fileCfg,
		catalog: catalog,
		weights: fileCfg.Weights.Apply(model.DefaultWeights),
		magic:   magic,
	}, nil
}

// loadText reads the corpus or samples one from the word list. Sampled
// words are restricted to those typeable on table.
func (s *analysisSetup) loadText(table *layout.Table) error {
	if s.cfg.WordlistPath == "" {
		text, err := corpus.Load(s.cfg.CorpusPath)
		if err != nil {
			return corpusLoadError(s.cfg.CorpusPath, err)
		}
		s.text = text
		verbosef("Loaded corpus %s (%d bytes)\n", s.cfg.CorpusPath, len(text))
		return nil
	}
	words, err := corpus.LoadWords(s.cfg.WordlistPath)
	if err != nil {
		return fmt.Errorf("failed to load word list %s: %w", s.cfg.WordlistPath, err)
	}
	typeable := corpus.Filter(words, corpus.TypeableOn(table))
	if len(typeable) == 0 {
		return fmt.Errorf("no words in %s are typeable on the layout", s.cfg.WordlistPath)
	}
	s.text = corpus.NewGenerator(s.cfg.Seed).Sample(typeable, s.cfg.Sample)
	verbosef("Sampled %d words from %d typeable entries\n", s.cfg.Sample, len(typeable))
	return nil
}

func (s *analysisSetup) options(def layout.Definition) (analyzer.Options, error) {
	rules, err := layout.MagicRules(def.Magic)
	if err != nil {
		return analyzer.Options{}, fmt.Errorf("layout %s: %w", def.Name, err)
	}
	for k, v := range s.magic {
		rules[k] = v
	}
	weights := s.weights
	return analyzer.Options{
		Category:         s.cfg.Category,
		Magic:            s.cfg.Magic,
		MagicRules:       rules,
		IncludeThumbAlt:  s.cfg.IncludeThumbAlt,
		IncludeThumbRoll: s.cfg.IncludeThumbRoll,
		EpicInequality:   s.cfg.EpicInequality,
		Weights:          &weights,
	}, nil
}

func (s *analysisSetup) analyze(nameOrKeys string) (result, error) {
	def, err := layout.Resolve(s.catalog, nameOrKeys)
	if err != nil {
		return result{}, err
	}
	table, err := layout.Build(def.Keys)
	if err != nil {
		return result{}, fmt.Errorf("layout %s: %w", def.Name, err)
	}
	if s.text == "" {
		if err := s.loadText(table); err != nil {
			return result{}, err
		}
	}
	opts, err := s.options(def)
	if err != nil {
		return result{}, err
	}

	text := s.text
	if s.cfg.Sanitize {
		var dropped int
		text, dropped = corpus.Sanitize(text, table)
		verbosef("Sanitized corpus for %s: %d characters dropped\n", def.Name, dropped)
	}
	start := time.Now()
	st, err := analyzer.AnalyzeTable(text, table, opts)
	if err != nil {
		return result{}, fmt.Errorf("analysis of %s failed: %w", def.Name, err)
	}
	verbosef("Analyzed %s: %d chars in %s\n", def.Name, st.Chars, time.Since(start).Round(time.Millisecond))
	return result{def: def, stats: st}, nil
}

func (s *analysisSetup) run(r result) model.Run {
	corpusPath := s.cfg.CorpusPath
	if s.cfg.WordlistPath != "" {
		corpusPath = s.cfg.WordlistPath
	}
	return model.Run{
		CreatedAt:  time.Now(),
		LayoutName: r.def.Name,
		Letters:    r.def.Keys,
		CorpusPath: corpusPath,
		Category:   s.cfg.Category,
		Stats:      *r.stats,
	}
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	setup, err := loadAnalysisSetup(cmd)
	if err != nil {
		return err
	}
	if analyzeFormat != "text" && analyzeFormat != "json" && analyzeFormat != "yaml" {
		return fmt.Errorf("--format must be text, json or yaml")
	}
	res, err := setup.analyze(setup.cfg.Layout)
	if err != nil {
		return err
	}

	if analyzeSave {
		if err := saveRun(cmd.Context(), setup.run(res)); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if analyzeFormat != "text" {
		export := stats.NewExport(res.def.Name, res.def.Keys, setup.cfg.Category, res.stats, setup.cfg.Top)
		if err := stats.WriteExport(out, analyzeFormat, export); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	title := fmt.Sprintf("Layout: %s [%s]", res.def.Name, res.def.Keys)
	if err := stats.RenderSummary(out, title, res.stats); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderTopNgrams(out, setup.cfg.Category, res.stats.Ngrams, setup.cfg.Top); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	useColor := stats.ShouldUseColor(os.Stdout, analyzeColor)
	if err := stats.RenderHeatmap(out, res.def.Keys, res.stats.Freq, useColor); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func saveRun(ctx context.Context, run model.Run) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)
	id, err := st.InsertRun(contextOrBackground(ctx), run)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	logErrf("Saved run #%d\n", id)
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newLayoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "List available layouts",
		Args:  cobra.NoArgs,
		RunE:  runLayoutsCmd,
	}
}

func runLayoutsCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	catalog, err := layout.Catalog(fileCfg.Layouts)
	if err != nil {
		return fmt.Errorf("failed to load layouts: %w", err)
	}
	for _, line := range layoutLines(catalog) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func layoutLines(catalog map[string]layout.Definition) []string {
	names := layout.Names(catalog)
	width := 0
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}
	lines := make([]string, 0, len(names))
	for _, name := range names {
		def := catalog[name]
		line := fmt.Sprintf("%-*s  %s", width, name, def.Keys)
		if def.Description != "" {
			line += "  " + def.Description
		}
		lines = append(lines, line)
	}
	return lines
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved runs",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historyLayout, "layout", "", "layout name filter")
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N runs")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	sinceTime, err := parseSince(historySince)
	if err != nil {
		return err
	}
	if historyLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	runs, err := st.ListRuns(contextOrBackground(cmd.Context()), model.HistoryConfig{
		Layout: historyLayout,
		Since:  sinceTime,
		Last:   historyLast,
	})
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	return stats.RenderHistory(cmd.OutOrStdout(), runs)
}

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse [run-id]",
		Short: "Browse a saved run or a fresh analysis",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBrowseCmd,
	}
	addAnalyzeFlags(cmd)
	return cmd
}

func runBrowseCmd(cmd *cobra.Command, args []string) error {
	var run model.Run
	top := analyzeTop
	if len(args) == 1 {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid run id %q", args[0])
		}
		st, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore(st)
		run, err = st.GetRun(contextOrBackground(cmd.Context()), id)
		if err != nil {
			return fmt.Errorf("failed to load run %d: %w", id, err)
		}
	} else {
		setup, err := loadAnalysisSetup(cmd)
		if err != nil {
			return err
		}
		res, err := setup.analyze(setup.cfg.Layout)
		if err != nil {
			return err
		}
		run = setup.run(res)
		top = setup.cfg.Top
	}

	m := browse.NewModel(run, top)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <layout>...",
		Short: "Rank several layouts over the same corpus",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCompareCmd,
	}
	addAnalyzeFlags(cmd)
	return cmd
}

func runCompareCmd(cmd *cobra.Command, args []string) error {
	setup, err := loadAnalysisSetup(cmd)
	if err != nil {
		return err
	}
	ranked := make([]stats.Ranked, 0, len(args))
	for _, arg := range args {
		res, err := setup.analyze(arg)
		if err != nil {
			return err
		}
		name := res.def.Name
		if name == "custom" {
			name = res.def.Keys
		}
		ranked = append(ranked, stats.Ranked{Name: name, Stats: res.stats})
	}
	return stats.RenderComparison(cmd.OutOrStdout(), ranked)
}

func newSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a synthetic corpus sampled from a word list",
		Args:  cobra.NoArgs,
		RunE:  runSampleCmd,
	}
	addAnalyzeFlags(cmd)
	cmd.Flags().StringVarP(&sampleOut, "out", "o", "", "output file (default: the configured corpus path)")
	cmd.Flags().BoolVar(&sampleForce, "force", false, "overwrite an existing file")
	return cmd
}

func runSampleCmd(cmd *cobra.Command, _ []string) error {
	setup, err := loadAnalysisSetup(cmd)
	if err != nil {
		return err
	}
	if setup.cfg.WordlistPath == "" {
		return fmt.Errorf("--wordlist is required")
	}
	def, err := layout.Resolve(setup.catalog, setup.cfg.Layout)
	if err != nil {
		return err
	}
	table, err := layout.Build(def.Keys)
	if err != nil {
		return fmt.Errorf("layout %s: %w", def.Name, err)
	}
	if err := setup.loadText(table); err != nil {
		return err
	}

	outPath := sampleOut
	if outPath == "" {
		outPath = setup.cfg.CorpusPath
	}
	if !sampleForce {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("corpus already exists: %s (use --force to overwrite)", outPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat corpus: %w", err)
		}
	}
	if err := writeCorpus(outPath, setup.text); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	logErrf("Wrote %s\n", outPath)
	return nil
}

func writeCorpus(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create corpus dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "corpus-*.txt")
	if err != nil {
		return fmt.Errorf("failed to create temp corpus: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	writer := bufio.NewWriter(tmpFile)
	if _, err := fmt.Fprintln(writer, text); err != nil {
		return fmt.Errorf("failed to write corpus: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush corpus: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close corpus: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write corpus: %w", err)
	}
	return nil
}

func openStore() (*store.Store, error) {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	return st, nil
}

func closeStore(st *store.Store) {
	if cerr := st.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

func parseSince(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid --since value: %w", err)
	}
	return &parsed, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# layoutstat configuration
# Uncomment a value to enable it. CLI flags override config values.

[analyze]
# layout = %q            # Layout name or literal 32-character layout
# corpus = "~/corpus.txt"     # Corpus file
# ngram = "sfb"               # Record n-grams of this category
# top = %d                    # Number of n-grams to show
# magic = false               # Digraph preprocessing; doubled letters collapse to letter + "*"
# include-thumb-alt = false   # Count alternations involving a thumb
# include-thumb-roll = false  # Count rolls involving a thumb
# epic-inequality = false     # Advance the skipgram anchor on any hand change
# sanitize = true             # Drop characters the layout cannot type

[layouts]
# mine = "qwfpbjluy;arstgmneiozxcdvkh,./ *"

[magic]
# h = "y"                     # Magic key after h types y

[weights]
# sfb weights are derived from finger speed; these override the rest.
# heatmap = %d
# column-pen = %d
# fspeed = %d
# lsb = %d
# fsb = %d
# inroll = %d
# red = %d
`,
		defaultLayout,
		defaultTop,
		model.DefaultWeights.Heatmap,
		model.DefaultWeights.ColumnPen,
		model.DefaultWeights.FSpeed,
		model.DefaultWeights.LSB,
		model.DefaultWeights.FSB,
		model.DefaultWeights.InRoll,
		model.DefaultWeights.Red,
	)
}

func validateConfig(cfg model.AnalyzeConfig) error {
	if strings.TrimSpace(cfg.Layout) == "" {
		return fmt.Errorf("--layout must not be empty")
	}
	if cfg.Top < 0 {
		return fmt.Errorf("--top must be >= 0")
	}
	if cfg.WordlistPath != "" && cfg.Sample <= 0 {
		return fmt.Errorf("--sample must be > 0")
	}
	if cfg.WordlistPath == "" && cfg.CorpusPath == "" {
		return fmt.Errorf("--corpus must not be empty")
	}
	return nil
}

func corpusLoadError(path string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load corpus: %v", err),
		fmt.Sprintf("expected corpus at: %s", path),
		"Pass --corpus <file>, or sample one with: layoutstat sample --wordlist <file>",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func verbosef(format string, args ...any) {
	if analyzeVerbose {
		logErrf(format, args...)
	}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

// Package main provides the CLI entrypoint for lexiscan.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/lexiscan/internal/analyze"
	"github.com/verte-zerg/lexiscan/internal/bench"
	"github.com/verte-zerg/lexiscan/internal/config"
	"github.com/verte-zerg/lexiscan/internal/generator"
	"github.com/verte-zerg/lexiscan/internal/histui"
	"github.com/verte-zerg/lexiscan/internal/model"
	"github.com/verte-zerg/lexiscan/internal/report"
	"github.com/verte-zerg/lexiscan/internal/store"
	"github.com/verte-zerg/lexiscan/internal/wordlist"
)

const (
	defaultGenWords = 50000
	defaultCaps     = 0.3
	defaultPunct    = 0.3
)

const defaultPunctSet = ".,!?;:\"'()-"

var (
	analyzeTop     int
	analyzeLongest int
	analyzeNoSave  bool

	genWords    int
	genCaps     float64
	genPunct    float64
	genPunctSet string
	genSeed     int64
	genWordlist string
	genOut      string

	benchWords int
	benchFile  string
	benchSeed  int64

	historyLast  int
	historyPlain bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lexiscan [file]",
		Short:         "Single-pass text analyzer",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runAnalyzeCmd,
	}

	rootCmd.Flags().IntVar(&analyzeTop, "top", analyze.DefaultTopWords, "number of most frequent words to report")
	rootCmd.Flags().IntVar(&analyzeLongest, "longest", analyze.DefaultTopLongest, "number of longest words to report")
	rootCmd.Flags().BoolVar(&analyzeNoSave, "no-save", false, "do not record the run in history")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newBenchCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "top", &analyzeTop, fileCfg.Analyze.TopWords)
	applyIntConfig(cmd, "longest", &analyzeLongest, fileCfg.Analyze.TopLongest)
	if fileCfg.Analyze.Save != nil && !cmd.Flags().Changed("no-save") {
		analyzeNoSave = !*fileCfg.Analyze.Save
	}

	cfg := model.Config{
		TopWords:   analyzeTop,
		TopLongest: analyzeLongest,
		Save:       !analyzeNoSave,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	source := "stdin"
	var text string
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		source = filepath.Base(args[0])
		text = string(data)
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(data)
	}

	started := time.Now()
	result := analyze.AnalyzeWithLimits(text, cfg.TopWords, cfg.TopLongest)
	elapsed := time.Since(started)

	if err := report.RenderResult(cmd.OutOrStdout(), result, elapsed); err != nil {
		return fmt.Errorf("failed to render result: %w", err)
	}

	if cfg.Save {
		if err := saveRun(started, source, len(text), result, elapsed); err != nil {
			logErrf("failed to save run: %v\n", err)
		}
	}
	return nil
}

func saveRun(started time.Time, source string, inputBytes int, result model.Result, elapsed time.Duration) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	stats := model.RunStats{
		StartedAt:   started,
		Source:      source,
		InputBytes:  inputBytes,
		AlphaChars:  result.TotalAlphaChars,
		UniqueWords: result.UniqueWords,
		DurationMs:  elapsed.Milliseconds(),
	}
	if _, err := st.InsertRun(context.Background(), stats, result.TopWords); err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	return nil
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate sample text",
		Args:  cobra.NoArgs,
		RunE:  runGenerateCmd,
	}
	cmd.Flags().IntVar(&genWords, "words", defaultGenWords, "number of words")
	cmd.Flags().Float64Var(&genCaps, "caps", defaultCaps, "probability of capitalized first letter (0-1)")
	cmd.Flags().Float64Var(&genPunct, "punct", defaultPunct, "punctuation probability per word (0-1)")
	cmd.Flags().StringVar(&genPunctSet, "punct-set", defaultPunctSet, "punctuation set")
	cmd.Flags().Int64Var(&genSeed, "seed", 0, "random seed (0 uses current time)")
	cmd.Flags().StringVar(&genWordlist, "wordlist", "", "word list file (one word per line)")
	cmd.Flags().StringVar(&genOut, "out", "", "output file (default stdout)")
	return cmd
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "words", &genWords, fileCfg.Generate.Words)
	applyFloatConfig(cmd, "caps", &genCaps, fileCfg.Generate.CapsPct)
	applyFloatConfig(cmd, "punct", &genPunct, fileCfg.Generate.PunctPct)
	applyStringConfig(cmd, "punct-set", &genPunctSet, fileCfg.Generate.PunctSet)
	applyStringConfig(cmd, "wordlist", &genWordlist, fileCfg.Generate.WordList)

	gcfg := model.GenerateConfig{
		Words:        genWords,
		CapsPct:      genCaps,
		PunctPct:     genPunct,
		PunctSet:     genPunctSet,
		Seed:         genSeed,
		WordListPath: genWordlist,
	}
	if err := validateGenerateConfig(gcfg); err != nil {
		return err
	}

	words, err := resolveWords(gcfg.WordListPath)
	if err != nil {
		return err
	}

	gen := generator.New(gcfg.Seed)
	text := gen.Generate(words, gcfg.Words, gcfg.CapsPct, gcfg.PunctPct, []rune(gcfg.PunctSet))

	if genOut == "" {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), text); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(genOut, []byte(text+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", genOut, err)
	}
	logErrf("Wrote %s\n", genOut)
	return nil
}

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare naive and optimized analysis",
		Args:  cobra.NoArgs,
		RunE:  runBenchCmd,
	}
	cmd.Flags().IntVar(&benchWords, "words", defaultGenWords, "generated words when no file is given")
	cmd.Flags().StringVar(&benchFile, "file", "", "analyze this file instead of generated text")
	cmd.Flags().Int64Var(&benchSeed, "seed", 1, "random seed for generated text")
	return cmd
}

func runBenchCmd(cmd *cobra.Command, _ []string) error {
	var text string
	if benchFile != "" {
		data, err := os.ReadFile(benchFile)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		text = string(data)
	} else {
		if benchWords <= 0 {
			return fmt.Errorf("--words must be > 0")
		}
		gen := generator.New(benchSeed)
		text = gen.Generate(wordlist.Default, benchWords, defaultCaps, defaultPunct, []rune(defaultPunctSet))
	}
	logErrf("Analyzing %d bytes of text...\n", len(text))

	cmp, err := bench.Run(text, analyze.DefaultTopWords, analyze.DefaultTopLongest)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if err := report.RenderComparison(out, cmp); err != nil {
		return fmt.Errorf("failed to render comparison: %w", err)
	}
	if err := report.RenderResult(out, cmp.Result, cmp.Optimized); err != nil {
		return fmt.Errorf("failed to render result: %w", err)
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse stored analysis runs",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N runs")
	cmd.Flags().BoolVar(&historyPlain, "plain", false, "print runs without the interactive UI")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	filter := model.RunsFilter{Last: historyLast}
	if historyPlain {
		runs, err := st.ListRuns(context.Background(), filter)
		if err != nil {
			return fmt.Errorf("failed to list runs: %w", err)
		}
		return report.RenderRuns(cmd.OutOrStdout(), runs)
	}

	uiModel := histui.NewModel(st, filter)
	program := tea.NewProgram(uiModel, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run history TUI: %w", err)
	}
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

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# lexiscan configuration
# Uncomment a value to enable it. CLI flags override config values.

[analyze]
# top = %d               # Number of most frequent words to report
# longest = %d            # Number of longest words to report
# save = true            # Record runs in history

[generate]
# words = %d          # Words per generated text
# caps = %.2f            # Probability of capitalized first letter (0-1)
# punct = %.2f           # Punctuation probability per word (0-1)
# punct-set = %q # Punctuation set
# wordlist = ""          # Word list file (one word per line)
`,
		analyze.DefaultTopWords,
		analyze.DefaultTopLongest,
		defaultGenWords,
		defaultCaps,
		defaultPunct,
		defaultPunctSet,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.TopWords <= 0 {
		return fmt.Errorf("--top must be > 0")
	}
	if cfg.TopLongest <= 0 {
		return fmt.Errorf("--longest must be > 0")
	}
	return nil
}

func validateGenerateConfig(cfg model.GenerateConfig) error {
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if cfg.CapsPct < 0 || cfg.CapsPct > 1 {
		return fmt.Errorf("--caps must be between 0 and 1")
	}
	if cfg.PunctPct < 0 || cfg.PunctPct > 1 {
		return fmt.Errorf("--punct must be between 0 and 1")
	}
	return nil
}

func resolveWords(path string) ([]string, error) {
	if path == "" {
		return wordlist.Default, nil
	}
	words, err := wordlist.LoadWords(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list %s: %w", path, err)
	}
	return words, nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

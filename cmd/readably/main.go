package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	flag "github.com/spf13/pflag"

	"github.com/readably/readably/internal/analyze"
	"github.com/readably/readably/internal/audience"
	"github.com/readably/readably/internal/config"
	"github.com/readably/readably/internal/log"
	"github.com/readably/readably/internal/output"
	"github.com/readably/readably/internal/source"
	"github.com/readably/readably/internal/text"
)

func main() {
	os.Exit(run())
}

const usageText = `Usage: readably <command> [flags] [files...]

Commands:
  analyze    Analyze content files for readability (default with file arguments)
  profiles   List the target audience presets
  init       Generate a default .readably.yml config file
  version    Print version and exit

Global flags:
  -h, --help      Show this help

Run 'readably <command> --help' for more information on a command.
`

func run() int {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	first := os.Args[1]

	switch first {
	case "--help", "-h", "help":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	switch first {
	case "analyze":
		return runAnalyze(os.Args[2:])
	case "profiles":
		return runProfiles(os.Args[2:])
	case "init":
		return runInit(os.Args[2:])
	case "version":
		printVersion()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "readably: unknown command %q\n\n%s", first, usageText)
		return 2
	}
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("readably %s\n", version)
}

// runAnalyze implements the "analyze" subcommand.
func runAnalyze(args []string) int {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	var (
		configPath  string
		format      string
		audienceID  string
		wpm         int
		speakingWPM int
		noColor     bool
		strict      bool
		verbose     bool
	)

	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&format, "format", "f", "", "Output format: text, json")
	fs.StringVarP(&audienceID, "audience", "a", "", "Target audience preset (see 'readably profiles')")
	fs.IntVar(&wpm, "wpm", 0, "Reading words per minute for the time estimate")
	fs.IntVar(&speakingWPM, "speaking-wpm", 0, "Speaking words per minute for the time estimate")
	fs.BoolVar(&noColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVar(&strict, "strict", false, "Exit 1 when any writing metric is poor")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: readably analyze [flags] [files...]\n\n"+
			"Analyze content files for readability and writing quality.\n\n"+
			"Files can be paths, directories (walked recursively for content files),\n"+
			"or glob patterns. With no file arguments, reads from stdin if piped.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "readably: %v\n", err)
		return 2
	}
	cfg.Merge(&config.Config{
		Audience:               audienceID,
		WordsPerMinute:         wpm,
		SpeakingWordsPerMinute: speakingWPM,
		Format:                 format,
	})
	if cfg.Format != "text" && cfg.Format != "json" {
		fmt.Fprintf(os.Stderr, "readably: unknown format %q\n", cfg.Format)
		return 2
	}

	logger := log.New(verbose, os.Stderr)
	opts := analyze.Options{
		TargetAudience:         cfg.Audience,
		WordsPerMinute:         cfg.WordsPerMinute,
		SpeakingWordsPerMinute: cfg.SpeakingWordsPerMinute,
	}

	fileArgs := fs.Args()

	// No file args: analyze stdin if piped.
	if len(fileArgs) == 0 {
		if !isStdinPipe() {
			return 0
		}
		return analyzeStdin(cfg, opts, noColor, strict)
	}

	files, err := source.Resolve(fileArgs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "readably: %v\n", err)
		return 2
	}

	var reports []output.Report
	for _, path := range files {
		if cfg.Ignored(path) {
			logger.Printf("ignoring %s", path)
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "readably: reading %q: %v\n", path, err)
			return 2
		}
		logger.Printf("analyzing %s (%d bytes)", path, len(data))
		reports = append(reports, output.Report{
			Path:   path,
			Result: analyzeContent(path, data, opts),
		})
	}

	if err := render(os.Stdout, cfg.Format, noColor, reports); err != nil {
		fmt.Fprintf(os.Stderr, "readably: %v\n", err)
		return 2
	}
	if strict && anyPoor(reports) {
		return 1
	}
	return 0
}

// analyzeContent runs the engine over one file's bytes. Markdown is
// reduced to plain text through the parser first; everything else goes
// straight in and relies on permissive tag stripping.
func analyzeContent(path string, data []byte, opts analyze.Options) analyze.Result {
	content := string(data)
	if source.IsMarkdown(path) {
		content = text.FromMarkdown(data)
	}
	return analyze.Analyze(content, opts)
}

func analyzeStdin(cfg *config.Config, opts analyze.Options, noColor, strict bool) int {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "readably: reading stdin: %v\n", err)
		return 2
	}
	reports := []output.Report{{
		Path:   "<stdin>",
		Result: analyze.Analyze(string(data), opts),
	}}
	if err := render(os.Stdout, cfg.Format, noColor, reports); err != nil {
		fmt.Fprintf(os.Stderr, "readably: %v\n", err)
		return 2
	}
	if strict && anyPoor(reports) {
		return 1
	}
	return 0
}

// runProfiles implements the "profiles" subcommand.
func runProfiles(args []string) int {
	fs := flag.NewFlagSet("profiles", flag.ContinueOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: readably profiles\n\n"+
			"List the target audience presets and their grade ranges.\n")
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	for _, p := range audience.Profiles() {
		fmt.Printf("%-10s %-16s grades %.0f-%.0f\n", p.ID, p.Name, p.MinGrade, p.MaxGrade)
	}
	return 0
}

// runInit implements the "init" subcommand: generate .readably.yml.
func runInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: readably init\n\n"+
			"Generate a default .readably.yml config file in the current directory.\n")
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "readably: init takes no arguments\n")
		return 2
	}

	if _, err := os.Stat(config.FileName); err == nil {
		fmt.Fprintf(os.Stderr, "readably: %s already exists\n", config.FileName)
		return 2
	}

	data, err := config.Dump(config.Defaults())
	if err != nil {
		fmt.Fprintf(os.Stderr, "readably: %v\n", err)
		return 2
	}

	if err := os.WriteFile(config.FileName, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "readably: writing %s: %v\n", config.FileName, err)
		return 2
	}

	fmt.Fprintf(os.Stderr, "readably: created %s\n", config.FileName)
	return 0
}

// loadConfig loads an explicit config path, or discovers one from the
// working directory, or falls back to defaults.
func loadConfig(path string) (*config.Config, error) {
	defaults := config.Defaults()

	if path == "" {
		found, err := config.Discover(".")
		if err != nil {
			return nil, err
		}
		if found == "" {
			return defaults, nil
		}
		path = found
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return defaults.Merge(cfg), nil
}

func render(w io.Writer, format string, noColor bool, reports []output.Report) error {
	var f output.Formatter
	if format == "json" {
		f = &output.JSONFormatter{}
	} else {
		f = &output.TextFormatter{Color: !noColor && isTerminal(os.Stdout)}
	}
	return f.Format(w, reports)
}

// anyPoor reports whether any metric in any report is poor.
func anyPoor(reports []output.Report) bool {
	for _, r := range reports {
		for _, m := range r.Result.Metrics {
			if m.Status == analyze.StatusPoor {
				return true
			}
		}
	}
	return false
}

// isStdinPipe returns true when stdin is not a terminal.
func isStdinPipe() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

// isTerminal returns true when f is attached to a terminal.
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

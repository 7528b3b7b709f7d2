package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docdump"
	docfs "github.com/fwojciec/docdump/fs"
	"github.com/fwojciec/docdump/goquery"
	"github.com/fwojciec/docdump/htmltomarkdown"
	docslog "github.com/fwojciec/docdump/slog"
	"github.com/fwojciec/docdump/trafilatura"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// Optional .env file supplies defaults for the DOCDUMP_* variables.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docdump"),
		kong.Description("Build a combined plain-text export of an HTML documentation tree"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	root, err := filepath.Abs(cli.Root)
	if err != nil {
		return err
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return docdump.Errorf(docdump.ENOTFOUND, "root directory does not exist: %s", root)
	}

	outputPath := cli.Output
	if !filepath.IsAbs(outputPath) {
		outputPath = filepath.Join(root, outputPath)
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire dependencies
	var source docdump.FileSource = docfs.NewDirSource(logger)
	source = docslog.NewLoggingSource(source, logger)

	var extractor docdump.Extractor
	switch cli.Engine {
	case "trafilatura":
		extractor = trafilatura.NewExtractor()
	default:
		extractor = goquery.NewExtractor()
	}
	extractor = docslog.NewLoggingExtractor(extractor, logger)

	opts := []BuilderOption{WithConcurrency(cli.Concurrency)}
	if cli.Format == "markdown" {
		opts = append(opts, WithConverter(htmltomarkdown.NewConverter()))
	}

	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Source:  source,
		Builder: NewConcurrentBuilder(extractor, logger, opts...),
		Writer:  docfs.NewWriter(outputPath),
	}

	cmd := &BuildCmd{
		Root:       root,
		OrderFile:  cli.OrderFile,
		OutputPath: outputPath,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Root        string `arg:"" optional:"" default:"." env:"DOCDUMP_ROOT" help:"Root directory to search for HTML files (default: current directory)"`
	Output      string `short:"o" default:"combined-docs.txt" env:"DOCDUMP_OUTPUT" help:"Output filename, resolved relative to the root directory"`
	OrderFile   string `env:"DOCDUMP_ORDER_FILE" help:"File specifying a custom ordering of HTML files"`
	Format      string `enum:"text,markdown" default:"text" help:"Section body format"`
	Engine      string `enum:"goquery,trafilatura" default:"goquery" help:"Content extraction engine"`
	Concurrency int    `short:"c" default:"1" help:"Concurrent extraction limit"`
	Verbose     bool   `short:"v" help:"Enable debug logging"`
}

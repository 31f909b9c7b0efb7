package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/bw"
	"github.com/fwojciec/bw/anchor"
	"github.com/fwojciec/bw/extract"
	"github.com/fwojciec/bw/fetch"
	"github.com/fwojciec/bw/goquery"
	"github.com/fwojciec/bw/htmltomarkdown"
	bwhttp "github.com/fwojciec/bw/http"
	"github.com/fwojciec/bw/readability"
	"github.com/fwojciec/bw/rod"
	bwslog "github.com/fwojciec/bw/slog"
	"github.com/fwojciec/bw/sqlite"
	"github.com/fwojciec/bw/trafilatura"
	"golang.org/x/time/rate"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database holding persisted settings.
	DB *sqlite.DB

	// Fetcher used by page commands. Closed by Close.
	Fetcher bw.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var err error
	if m.Fetcher != nil {
		err = m.Fetcher.Close()
	}
	if m.DB != nil {
		if cerr := m.DB.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("bw"),
		kong.Description("Extract page content, anchor text fragments and highlight stored quotes."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'bw --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	if cli.DB != "" {
		m.DBPath = cli.DB
	}

	deps.Logger = newLogger(stderr, cli.Verbose)

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set BW_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	deps.Config = sqlite.NewConfigService(m.DB)
	if cli.APIBase != "" && !strings.HasPrefix(kongCtx.Command(), "config") {
		deps.Config = &overrideConfig{ConfigService: deps.Config, baseURL: cli.APIBase}
	}

	client := bwhttp.NewClient(deps.Config, bwhttp.WithLimiter(rate.NewLimiter(rate.Limit(cli.RateLimit), 1)))
	deps.Quotes = bwslog.NewLoggingQuoteService(bwhttp.NewQuoteService(client), deps.Logger)
	deps.Captures = bwslog.NewLoggingCaptureService(bwhttp.NewCaptureService(client), deps.Logger)

	if needsFetcher(kongCtx.Command()) {
		var fetcher bw.Fetcher
		if cli.Browser {
			f, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = f
		} else {
			fetcher = bwhttp.NewFetcher()
		}
		fetcher = fetch.NewFetcher(fetcher, fetch.WithHostLimiter(fetch.NewHostLimiter(cli.HostRate)))
		m.Fetcher = bwslog.NewLoggingFetcher(fetcher, deps.Logger)
		deps.Fetcher = m.Fetcher
	}

	deps.Extractor = newOrchestrator(deps.Logger)
	deps.Converter = htmltomarkdown.NewConverter()

	return kongCtx.Run(deps)
}

// newOrchestrator wires the extraction pipeline. Metadata gaps left by the
// meta tags are filled by readability first, then trafilatura.
func newOrchestrator(logger *slog.Logger) *extract.Orchestrator {
	return &extract.Orchestrator{
		Filter:   goquery.NewNoiseFilter(),
		Scorer:   goquery.NewContentScorer(),
		Metadata: goquery.NewMetadataExtractor(),
		Enrichers: []extract.MetadataEnricher{
			readability.NewMetadataEnricher(),
			trafilatura.NewMetadataEnricher(),
		},
		Anchors:   anchor.NewBuilder(),
		DetectPDF: goquery.IsPDF,
		Logger:    logger,
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func needsFetcher(command string) bool {
	name, _, _ := strings.Cut(command, " ")
	switch name {
	case "extract", "anchor", "resolve", "highlight":
		return true
	}
	return false
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "bw.db"
	}
	dir := filepath.Join(home, ".bw")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "bw.db")
}

// overrideConfig serves a base URL given on the command line in place of the
// stored one.
type overrideConfig struct {
	bw.ConfigService
	baseURL string
}

func (c *overrideConfig) APIBaseURL(context.Context) (string, error) {
	return c.baseURL, nil
}

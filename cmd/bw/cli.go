package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/bw"
	"github.com/fwojciec/bw/extract"
	"github.com/fwojciec/bw/htmltomarkdown"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Config    bw.ConfigService
	Fetcher   bw.Fetcher
	Quotes    bw.QuoteService
	Captures  bw.CaptureService
	Extractor *extract.Orchestrator
	Converter *htmltomarkdown.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB        string  `name:"db" env:"BW_DB" help:"Path to the settings database"`
	APIBase   string  `name:"api-base" env:"BW_API_BASE" help:"Backend base URL, overriding the stored one"`
	Browser   bool    `short:"b" help:"Render pages in headless Chrome instead of fetching over HTTP"`
	RateLimit float64 `name:"rate-limit" default:"5" help:"Maximum backend requests per second"`
	HostRate  float64 `name:"host-rate" default:"2" help:"Maximum page requests per second to one host"`
	Verbose   bool    `short:"v" help:"Log at debug level"`

	Extract   ExtractCmd   `cmd:"" help:"Extract the content of one or more pages"`
	Anchor    AnchorCmd    `cmd:"" help:"Build a text-quote anchor for a fragment of a page"`
	Resolve   ResolveCmd   `cmd:"" help:"Locate a text-quote anchor in a page"`
	Highlight HighlightCmd `cmd:"" help:"Highlight the stored quotes of a page"`
	Config    ConfigCmd    `cmd:"" help:"Read or change persisted settings"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URLs        []string `arg:"" name:"url" help:"Page URLs to extract"`
	Mode        string   `short:"m" default:"full" enum:"full,reader,selection" help:"Extraction mode (full, reader, selection)"`
	Select      string   `short:"s" help:"Text to select before extracting"`
	Nth         int      `default:"0" help:"Which occurrence of --select to use, counting from 0"`
	Format      string   `short:"f" default:"json" enum:"json,yaml,text,markdown" help:"Output format (json, yaml, text, markdown)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	Capture     bool     `help:"Submit each result to the backend as a capture"`
	Out         string   `short:"o" type:"path" help:"Also save results as Markdown files under this directory"`
}

// AnchorCmd is the "anchor" subcommand.
type AnchorCmd struct {
	URL  string `arg:"" help:"Page URL"`
	Text string `arg:"" help:"Exact text to anchor"`
	Nth  int    `default:"0" help:"Which occurrence of the text to use, counting from 0"`
}

// ResolveCmd is the "resolve" subcommand.
type ResolveCmd struct {
	URL    string `arg:"" help:"Page URL"`
	Exact  string `arg:"" help:"Exact text of the anchor"`
	Prefix string `help:"Text expected before the match"`
	Suffix string `help:"Text expected after the match"`
}

// HighlightCmd is the "highlight" subcommand.
type HighlightCmd struct {
	URL      string        `arg:"" help:"Page URL"`
	HTML     bool          `name:"html" help:"Print the highlighted page instead of a summary"`
	Watch    bool          `help:"Keep re-fetching the page and re-highlight whenever it lands on a new URL"`
	Interval time.Duration `default:"30s" help:"How often --watch re-fetches the page"`
}

// ConfigCmd groups the settings subcommands.
type ConfigCmd struct {
	Get ConfigGetCmd `cmd:"" help:"Print the backend base URL"`
	Set ConfigSetCmd `cmd:"" help:"Store the backend base URL"`
}

// ConfigGetCmd is the "config get" subcommand.
type ConfigGetCmd struct{}

// ConfigSetCmd is the "config set" subcommand.
type ConfigSetCmd struct {
	URL string `arg:"" help:"Backend base URL"`
}

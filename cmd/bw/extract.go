package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fwojciec/bw"
	"github.com/fwojciec/bw/dom"
	"github.com/fwojciec/bw/fs"
	"github.com/fwojciec/bw/goquery"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// extraction is the outcome of extracting one URL.
type extraction struct {
	url    string
	result *bw.ExtractionResult
	err    error
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	mode := bw.ParseExtractionMode(c.Mode)
	if mode == bw.ModeSelection && c.Select == "" {
		fmt.Fprintln(deps.Stderr, "error: --select is required in selection mode")
		return bw.Errorf(bw.EINVALID, "--select is required in selection mode")
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	results := make([]extraction, len(c.URLs))
	g, gctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)
	for i, url := range c.URLs {
		g.Go(func() error {
			result, err := c.extract(gctx, deps, url, mode)
			results[i] = extraction{url: url, result: result, err: err}
			return nil
		})
	}
	_ = g.Wait()

	var failed int
	for _, e := range results {
		if e.err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", e.url, bw.ErrorMessage(e.err))
			continue
		}
		if err := writeResult(deps.Stdout, c.Format, e.result); err != nil {
			return err
		}
	}

	if c.Out != "" {
		if err := c.save(deps, results); err != nil {
			fmt.Fprintf(deps.Stderr, "error: saving results: %s\n", bw.ErrorMessage(err))
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d pages failed", failed, len(c.URLs))
	}
	return nil
}

func (c *ExtractCmd) extract(ctx context.Context, deps *Dependencies, url string, mode bw.ExtractionMode) (*bw.ExtractionResult, error) {
	doc, err := loadDocument(ctx, deps.Fetcher, url)
	if err != nil {
		return nil, err
	}
	if c.Select != "" {
		if err := selectText(doc, c.Select, c.Nth); err != nil {
			return nil, err
		}
	}

	result, err := deps.Extractor.Extract(ctx, doc, mode)
	if err != nil {
		return nil, err
	}

	if c.Format == "markdown" && result.ModeUsed != bw.ModeSelection && result.ModeUsed != bw.ModePDF {
		md, err := c.markdown(deps, doc, result.ModeUsed)
		if err != nil {
			return nil, err
		}
		result.Text, result.Meta.Truncated = bw.ClampText(md, bw.MaxExtractionChars)
		result.Meta.ExtractionCharCount = bw.CharCount(result.Text)
	}

	if c.Capture {
		capture := &bw.Capture{SourceURL: result.Meta.URL, Payload: result}
		if err := deps.Captures.EnqueueCapture(ctx, capture); err != nil {
			return nil, err
		}
		fmt.Fprintf(deps.Stderr, "Captured %s as %s\n", capture.SourceURL, capture.ID)
	}
	return result, nil
}

// save writes the successful results under c.Out, replacing its previous
// contents only when every result was written.
func (c *ExtractCmd) save(deps *Dependencies, results []extraction) error {
	out := filepath.Clean(c.Out)
	store := fs.NewResultStore(filepath.Dir(out), filepath.Base(out))
	var saved int
	for _, e := range results {
		if e.err != nil {
			continue
		}
		if err := store.Save(deps.Ctx, e.result); err != nil {
			_ = store.Abort()
			return err
		}
		saved++
	}
	if saved == 0 {
		return store.Abort()
	}
	if err := store.Commit(); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stderr, "Saved %d pages to %s\n", saved, out)
	return nil
}

// markdown converts the part of doc the mode extracts from a filtered copy:
// the best scoring content node for reader mode, the body otherwise.
func (c *ExtractCmd) markdown(deps *Dependencies, doc *dom.Document, mode bw.ExtractionMode) (string, error) {
	pageURL := doc.URL()
	var md string
	var err error
	doc.Do(func(root *html.Node) {
		clone := dom.CloneTree(root)
		goquery.NewNoiseFilter().Filter(clone)
		target := dom.Body(clone)
		if mode == bw.ModeReader {
			if best := goquery.NewContentScorer().Best(clone); best != nil {
				target = best
			}
		}
		if target == nil {
			target = clone
		}
		md, err = deps.Converter.Convert(target, pageURL)
	})
	return md, err
}

func writeResult(w io.Writer, format string, result *bw.ExtractionResult) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	case "text", "markdown":
		if result.Meta.Title != "" && format == "text" {
			fmt.Fprintf(w, "# %s\n# %s\n\n", result.Meta.Title, result.Meta.URL)
		}
		_, err := fmt.Fprintln(w, result.Text)
		return err
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
}

package fs

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/bw"
	"gopkg.in/yaml.v3"
)

// ResultStore writes extraction results into a directory with
// all-or-nothing semantics. Results are saved under baseDir/name.tmp and
// replace baseDir/name on Commit.
type ResultStore struct {
	baseDir string
	name    string

	// Now returns the capture time written to the frontmatter.
	Now func() time.Time
}

// NewResultStore creates a new ResultStore.
func NewResultStore(baseDir, name string) *ResultStore {
	return &ResultStore{
		baseDir: baseDir,
		name:    name,
		Now:     time.Now,
	}
}

func (s *ResultStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *ResultStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes r to the temporary directory.
func (s *ResultStore) Save(ctx context.Context, r *bw.ExtractionResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r == nil {
		return bw.Errorf(bw.EINVALID, "extraction result required")
	}

	relPath, err := ResultPath(r.Meta.URL)
	if err != nil {
		return err
	}
	fullPath := filepath.Join(s.tempDir(), filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content, err := FormatResult(r, s.Now())
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, content, 0644)
}

// Commit replaces the final directory with everything saved so far.
func (s *ResultStore) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards everything saved so far.
func (s *ResultStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

type frontmatter struct {
	Source    string            `yaml:"source"`
	Canonical string            `yaml:"canonical,omitempty"`
	Title     string            `yaml:"title"`
	Author    string            `yaml:"author,omitempty"`
	Published string            `yaml:"published,omitempty"`
	Site      string            `yaml:"site,omitempty"`
	Mode      bw.ExtractionMode `yaml:"mode"`
	Chars     int               `yaml:"chars"`
	Truncated bool              `yaml:"truncated"`
	Captured  string            `yaml:"captured"`
}

// FormatResult renders r as YAML frontmatter followed by the extracted text.
func FormatResult(r *bw.ExtractionResult, capturedAt time.Time) ([]byte, error) {
	fm, err := yaml.Marshal(frontmatter{
		Source:    r.Meta.URL,
		Canonical: r.Meta.CanonicalURL,
		Title:     r.Meta.Title,
		Author:    r.Meta.Author,
		Published: r.Meta.PublishedTime,
		Site:      r.Meta.SiteName,
		Mode:      r.ModeUsed,
		Chars:     r.Meta.ExtractionCharCount,
		Truncated: r.Meta.Truncated,
		Captured:  capturedAt.UTC().Format("2006-01-02"),
	})
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	b.WriteString("---\n")
	b.Write(fm)
	b.WriteString("---\n\n")
	b.WriteString(r.Text)
	b.WriteString("\n")
	return b.Bytes(), nil
}

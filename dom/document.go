// Package dom models a live browser document on top of golang.org/x/net/html.
// A Document owns a mutable node tree; all reads and writes of the tree happen
// inside Do, which runs a pass to completion before another may start.
package dom

import (
	"io"
	"strings"
	"sync"

	"github.com/fwojciec/bw"
	"golang.org/x/net/html"
)

// Document is a parsed HTML page that may change over time, the way a page
// rendered by a client-side app does.
type Document struct {
	tree sync.Mutex
	root *html.Node

	mu          sync.Mutex
	url         string
	contentType string
	selection   *Selection
	observers   []func()
}

// Option configures a Document.
type Option func(*Document)

// WithContentType sets the MIME type the document was served with.
func WithContentType(ct string) Option {
	return func(d *Document) {
		d.contentType = ct
	}
}

// NewDocument wraps an existing node tree.
func NewDocument(root *html.Node, url string, opts ...Option) *Document {
	d := &Document{root: root, url: url}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Parse parses HTML from r into a Document.
func Parse(r io.Reader, url string, opts ...Option) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, bw.Errorf(bw.EINVALID, "failed to parse HTML: %v", err)
	}
	return NewDocument(root, url, opts...), nil
}

// ParseString is Parse for an in-memory string.
func ParseString(s string, url string, opts ...Option) (*Document, error) {
	return Parse(strings.NewReader(s), url, opts...)
}

// URL returns the current location of the document.
func (d *Document) URL() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.url
}

// ContentType returns the MIME type the document was served with.
func (d *Document) ContentType() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.contentType
}

// Selection returns the current user selection, or nil.
func (d *Document) Selection() *Selection {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.selection
}

// Select replaces the current user selection. A nil selection clears it.
func (d *Document) Select(sel *Selection) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selection = sel
}

// Do runs fn with exclusive access to the node tree.
// fn must not call Do, Mutate or Navigate.
func (d *Document) Do(fn func(root *html.Node)) {
	d.tree.Lock()
	defer d.tree.Unlock()
	fn(d.root)
}

// Mutate runs fn like Do and then notifies observers of the mutation batch.
func (d *Document) Mutate(fn func(root *html.Node)) {
	d.Do(fn)
	d.notify()
}

// Navigate changes the document URL and applies fn to the tree as a single
// mutation batch, the way a client-side route change does.
func (d *Document) Navigate(url string, fn func(root *html.Node)) {
	d.Do(func(root *html.Node) {
		d.mu.Lock()
		d.url = url
		d.selection = nil
		d.mu.Unlock()
		if fn != nil {
			fn(root)
		}
	})
	d.notify()
}

// Observe registers fn to be called after every mutation batch.
func (d *Document) Observe(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.observers = append(d.observers, fn)
}

func (d *Document) notify() {
	d.mu.Lock()
	observers := make([]func(), len(d.observers))
	copy(observers, d.observers)
	d.mu.Unlock()

	for _, fn := range observers {
		fn()
	}
}

// Render writes the current tree as HTML.
func (d *Document) Render(w io.Writer) (err error) {
	d.Do(func(root *html.Node) {
		err = html.Render(w, root)
	})
	return err
}

// Body returns the body element under root, or root itself when there is none.
func Body(root *html.Node) *html.Node {
	if body := FindElement(root, "body"); body != nil {
		return body
	}
	return root
}

// Title returns the document title with whitespace collapsed.
func Title(root *html.Node) string {
	t := FindElement(root, "title")
	if t == nil {
		return ""
	}
	return strings.Join(strings.Fields(TextContent(t)), " ")
}

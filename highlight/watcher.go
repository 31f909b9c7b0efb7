package highlight

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/bw"
	"github.com/fwojciec/bw/dom"
)

var (
	_ bw.NavigationWatcher = (*MutationWatcher)(nil)
	_ bw.NavigationWatcher = (*PollWatcher)(nil)
)

// listeners is a set of URL change callbacks with the last URL seen.
type listeners struct {
	mu   sync.Mutex
	last string
	fns  []func(string)
}

func (l *listeners) add(fn func(string)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fns = append(l.fns, fn)
}

// check calls every callback when url differs from the last URL seen.
func (l *listeners) check(url string) {
	l.mu.Lock()
	if url == l.last {
		l.mu.Unlock()
		return
	}
	l.last = url
	fns := make([]func(string), len(l.fns))
	copy(fns, l.fns)
	l.mu.Unlock()

	for _, fn := range fns {
		fn(url)
	}
}

// MutationWatcher reports URL changes by checking the document URL after
// every mutation batch.
type MutationWatcher struct {
	listeners
}

// NewMutationWatcher starts watching doc.
func NewMutationWatcher(doc *dom.Document) *MutationWatcher {
	w := &MutationWatcher{}
	w.last = doc.URL()
	doc.Observe(func() {
		w.check(doc.URL())
	})
	return w
}

// OnURLChanged implements bw.NavigationWatcher.
func (w *MutationWatcher) OnURLChanged(fn func(url string)) {
	w.add(fn)
}

// PollWatcher reports URL changes by sampling a URL source on a fixed
// interval.
type PollWatcher struct {
	listeners
	url      func() string
	interval time.Duration
}

// NewPollWatcher creates a PollWatcher sampling url every interval.
// Call Run to start polling.
func NewPollWatcher(url func() string, interval time.Duration) *PollWatcher {
	w := &PollWatcher{url: url, interval: interval}
	w.last = url()
	return w
}

// OnURLChanged implements bw.NavigationWatcher.
func (w *PollWatcher) OnURLChanged(fn func(url string)) {
	w.add(fn)
}

// Run polls until ctx is done.
func (w *PollWatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.check(w.url())
		}
	}
}

package mock

import "github.com/fwojciec/bw"

var _ bw.NavigationWatcher = (*NavigationWatcher)(nil)

// NavigationWatcher is a mock implementation of bw.NavigationWatcher.
type NavigationWatcher struct {
	OnURLChangedFn func(fn func(url string))
}

func (w *NavigationWatcher) OnURLChanged(fn func(url string)) {
	w.OnURLChangedFn(fn)
}

package bw

// NavigationWatcher reports client-side navigations of the current page.
type NavigationWatcher interface {
	// OnURLChanged registers fn to be called with the new URL each time the
	// page URL changes.
	OnURLChanged(fn func(url string))
}

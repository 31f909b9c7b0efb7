package highlight

import (
	"slices"
	"sync"

	"github.com/fwojciec/bw/dom"
	"golang.org/x/net/html"
)

// Registry maps quote ids to the wrapper elements currently marking them.
// It holds at most one element per id, and never returns an element that is
// no longer part of the document.
type Registry struct {
	mu       sync.Mutex
	elements map[string]*html.Node
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{elements: make(map[string]*html.Node)}
}

// Reset forgets every registered element without touching the tree.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.elements)
}

// Upsert registers el for id. An element previously registered for id is
// unwrapped first when still attached.
func (r *Registry) Upsert(id string, el *html.Node) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.elements[id]; ok && old != el {
		unwrap(old)
	}
	r.elements[id] = el
}

// Get returns the element registered for id. Elements that have been
// detached from the document are purged and reported as missing.
func (r *Registry) Get(id string) (*html.Node, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	el, ok := r.elements[id]
	if !ok {
		return nil, false
	}
	if !dom.IsAttached(el) {
		delete(r.elements, id)
		return nil, false
	}
	return el, true
}

// Len returns the number of registered ids.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.elements)
}

// IDs returns the registered ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.elements))
	for id := range r.elements {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// TeardownAll unwraps every highlight wrapper under root, registered or not,
// merges the text it splits, and resets the registry. It returns the number
// of wrappers removed. Calling it on a tree without wrappers is a no-op.
func (r *Registry) TeardownAll(root *html.Node) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for _, el := range dom.FindAll(root, IsWrapper) {
		if unwrap(el) {
			removed++
		}
	}
	for _, el := range r.elements {
		if unwrap(el) {
			removed++
		}
	}
	clear(r.elements)
	return removed
}

// unwrap replaces el with its children and normalizes the former parent.
// It reports whether el was attached.
func unwrap(el *html.Node) bool {
	parent := dom.Unwrap(el)
	if parent == nil {
		return false
	}
	dom.Normalize(parent)
	return true
}

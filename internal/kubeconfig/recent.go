package kubeconfig

import "sync"

// maxRecentContexts bounds the recent-context list
const maxRecentContexts = 5

// RecentContexts remembers the last few contexts switched to, most recent
// first and without duplicates. It lives in memory only.
type RecentContexts struct {
	mu      sync.Mutex
	entries []string
}

// NewRecentContexts creates an empty list
func NewRecentContexts() *RecentContexts {
	return &RecentContexts{entries: []string{}}
}

// Add moves name to the front, dropping the oldest entry past the limit
func (r *RecentContexts) Add(name string) {
	if name == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]string, 0, maxRecentContexts)
	entries = append(entries, name)
	for _, e := range r.entries {
		if e != name && len(entries) < maxRecentContexts {
			entries = append(entries, e)
		}
	}
	r.entries = entries
}

// List returns a copy of the entries, most recent first
func (r *RecentContexts) List() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string{}, r.entries...)
}

// Rename follows a context rename
func (r *RecentContexts) Rename(oldName, newName string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e == oldName {
			r.entries[i] = newName
		}
	}
}

// Remove drops a deleted context
func (r *RecentContexts) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.entries[:0]
	for _, e := range r.entries {
		if e != name {
			kept = append(kept, e)
		}
	}
	r.entries = kept
}

// Len returns the number of entries
func (r *RecentContexts) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

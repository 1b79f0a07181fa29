// Package routes provides a declarative, immutable route table that maps
// literal URL paths to named views. A Table is built once at startup and
// installed into a Controller, which owns path resolution from then on.
package routes

import (
	"fmt"
	"net/url"
	"path"
	"strings"
	"unicode"
)

// Entry associates a literal URL path with a symbolic name and the view
// rendered when the path is requested.
type Entry struct {
	Path  string
	Name  string
	View  string
	Title string
}

// Label returns the entry title, falling back to the name.
func (e Entry) Label() string {
	if e.Title != "" {
		return e.Title
	}
	return e.Name
}

// Table is an ordered, read-only collection of entries.
// Paths and names are unique within a table.
type Table struct {
	entries []Entry
	byPath  map[string]int
	byName  map[string]int
}

// New validates the entries and builds a Table preserving their order.
func New(entries ...Entry) (*Table, error) {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		byPath:  make(map[string]int, len(entries)),
		byName:  make(map[string]int, len(entries)),
	}

	for i, e := range entries {
		if err := validate(e); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if _, ok := t.byPath[e.Path]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePath, e.Path)
		}
		if _, ok := t.byName[e.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, e.Name)
		}
		t.byPath[e.Path] = len(t.entries)
		t.byName[e.Name] = len(t.entries)
		t.entries = append(t.entries, e)
	}

	return t, nil
}

// Entries returns a copy of the table entries in declaration order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Views returns the distinct view references in declaration order.
func (t *Table) Views() []string {
	seen := make(map[string]struct{}, len(t.entries))
	views := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		if _, ok := seen[e.View]; ok {
			continue
		}
		seen[e.View] = struct{}{}
		views = append(views, e.View)
	}
	return views
}

// Lookup resolves an exact request path to its entry.
func (t *Table) Lookup(path string) (Entry, bool) {
	i, ok := t.byPath[path]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Named resolves a route by its symbolic name.
func (t *Table) Named(name string) (Entry, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

func validate(e Entry) error {
	if e.Name == "" {
		return fmt.Errorf("%w: name required", ErrInvalidEntry)
	}
	if e.View == "" {
		return fmt.Errorf("%w: %s: view required", ErrInvalidEntry, e.Name)
	}
	if !strings.HasPrefix(e.Path, "/") {
		return fmt.Errorf("%w: %s: path must start with /", ErrInvalidEntry, e.Name)
	}
	if strings.ContainsAny(e.Path, "{}*") {
		return fmt.Errorf("%w: %s: path must be a literal", ErrInvalidEntry, e.Name)
	}
	if strings.IndexFunc(e.Path, func(r rune) bool { return unicode.IsSpace(r) || unicode.IsControl(r) }) >= 0 {
		return fmt.Errorf("%w: %s: path contains whitespace or control characters", ErrInvalidEntry, e.Name)
	}
	if _, err := url.PathUnescape(e.Path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidEntry, e.Name, err)
	}
	if !isClean(e.Path) {
		return fmt.Errorf("%w: %s: path %q is not clean", ErrInvalidEntry, e.Name, e.Path)
	}
	return nil
}

// isClean reports whether p is already in path.Clean form, allowing a
// single trailing slash.
func isClean(p string) bool {
	clean := path.Clean(p)
	if p != "/" && strings.HasSuffix(p, "/") {
		clean += "/"
	}
	return clean == p
}

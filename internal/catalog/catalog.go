// Package catalog holds the registry of instantiable component kinds.
package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/alexisbeaulieu97/buildify/internal/document"
	buildifyerrors "github.com/alexisbeaulieu97/buildify/pkg/errors"
)

// IDSource issues node ids.
type IDSource interface {
	NewID(kind string) string
}

// Catalog is a static, read-only list of component entries keyed by kind.
type Catalog struct {
	entries []Entry
	byKind  map[string]int
	ids     IDSource
	now     func() time.Time
}

// Option customises a Catalog.
type Option func(*Catalog)

// WithIDSource replaces the default id generator.
func WithIDSource(src IDSource) Option {
	return func(c *Catalog) {
		c.ids = src
	}
}

// WithClock replaces time.Now for time-dependent defaults.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) {
		c.now = now
	}
}

// WithEntries replaces the built-in entry list.
func WithEntries(entries []Entry) Option {
	return func(c *Catalog) {
		c.entries = entries
	}
}

// New builds a catalog over the built-in entries.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		entries: defaultEntries(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.ids == nil {
		c.ids = NewUUIDSource(c.now)
	}

	c.byKind = make(map[string]int, len(c.entries))
	for i, entry := range c.entries {
		c.byKind[entry.Kind] = i
	}
	return c
}

// Entries returns a copy of every entry in palette order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup returns the entry for kind.
func (c *Catalog) Lookup(kind string) (Entry, bool) {
	idx, ok := c.byKind[kind]
	if !ok {
		return Entry{}, false
	}
	return c.entries[idx], true
}

// Categories lists categories in order of first appearance.
func (c *Catalog) Categories() []document.Category {
	seen := make(map[document.Category]struct{})
	var out []document.Category
	for _, entry := range c.entries {
		if _, ok := seen[entry.Category]; ok {
			continue
		}
		seen[entry.Category] = struct{}{}
		out = append(out, entry.Category)
	}
	return out
}

// ByCategory returns the entries of one category in palette order.
func (c *Catalog) ByCategory(category document.Category) []Entry {
	var out []Entry
	for _, entry := range c.entries {
		if entry.Category == category {
			out = append(out, entry)
		}
	}
	return out
}

// Search ranks entries whose name or kind fuzzily matches query.
func (c *Catalog) Search(query string) []Entry {
	query = strings.TrimSpace(query)
	if query == "" {
		return c.Entries()
	}

	labels := make([]string, len(c.entries))
	for i, entry := range c.entries {
		labels[i] = entry.Name + " " + entry.Kind
	}

	ranks := fuzzy.RankFindNormalizedFold(query, labels)
	sort.Stable(ranks)

	out := make([]Entry, 0, len(ranks))
	for _, rank := range ranks {
		out = append(out, c.entries[rank.OriginalIndex])
	}
	return out
}

// Instantiate creates a fresh node of kind with its own copy of the default
// props and a newly issued id. Container kinds start with an empty child
// list; leaf kinds get none.
func (c *Catalog) Instantiate(kind string) (document.Node, error) {
	entry, ok := c.Lookup(kind)
	if !ok {
		return document.Node{}, buildifyerrors.NewNotFoundError("component kind", kind)
	}

	props := entry.Props.Clone()
	if props == nil {
		props = document.Props{}
	}
	if entry.prepare != nil {
		entry.prepare(props, c.now())
	}

	node := document.Node{
		ID:       c.ids.NewID(entry.Kind),
		Kind:     entry.Kind,
		Name:     entry.Name,
		Category: entry.Category,
		Props:    props,
	}
	if entry.Container {
		node.Children = []document.Node{}
	}
	return node, nil
}

// UUIDSource issues ids of the form <kind>_<unix-millis>_<random>, and
// remembers every id it has handed out so none is ever repeated.
type UUIDSource struct {
	mu     sync.Mutex
	now    func() time.Time
	issued map[string]struct{}
}

// NewUUIDSource creates an id source using the supplied clock.
func NewUUIDSource(now func() time.Time) *UUIDSource {
	if now == nil {
		now = time.Now
	}
	return &UUIDSource{now: now, issued: make(map[string]struct{})}
}

// NewID returns an id that this source has never returned before.
func (s *UUIDSource) NewID(kind string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefix := strings.ToLower(kind)
	for {
		suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
		id := fmt.Sprintf("%s_%d_%s", prefix, s.now().UnixMilli(), suffix)
		if _, dup := s.issued[id]; dup {
			continue
		}
		s.issued[id] = struct{}{}
		return id
	}
}

package entities

import (
	"tscat/internal/domain"
)

// Meta holds the attributes of the catalog's root element.
type Meta struct {
	Version        string
	Language       string
	SourceLanguage string
	// ContextComments holds the <comment> of contexts that carry one, by name.
	ContextComments map[string]string
}

func (m Meta) clone() Meta {
	if m.ContextComments != nil {
		comments := make(map[string]string, len(m.ContextComments))
		for k, v := range m.ContextComments {
			comments[k] = v
		}
		m.ContextComments = comments
	}
	return m
}

// DuplicatePolicy decides what happens when two entries share a Key.
type DuplicatePolicy int

const (
	// DuplicateLastWins keeps the later entry at the position of the first one.
	DuplicateLastWins DuplicatePolicy = iota
	// DuplicateReject fails catalog construction with a *domain.DuplicateError.
	DuplicateReject
)

type catalogOptions struct {
	duplicates      DuplicatePolicy
	allowUnfinished bool
}

// CatalogOption configures NewCatalog.
type CatalogOption func(*catalogOptions)

func WithDuplicatePolicy(p DuplicatePolicy) CatalogOption {
	return func(o *catalogOptions) { o.duplicates = p }
}

// WithUnfinished makes lookup serve non-empty unfinished translations too.
func WithUnfinished(allow bool) CatalogOption {
	return func(o *catalogOptions) { o.allowUnfinished = allow }
}

// Stats counts entries per status.
type Stats struct {
	Total      int
	Finished   int
	Unfinished int
	Obsolete   int
	// Untranslated counts finished or unfinished entries with no text.
	Untranslated int
}

// Catalog is an immutable translation table. It is safe for concurrent use.
type Catalog struct {
	meta            Meta
	entries         []Entry
	index           map[Key]int
	contexts        []string
	duplicates      []Key
	allowUnfinished bool
}

// NewCatalog indexes entries. The input slice is copied.
func NewCatalog(meta Meta, entries []Entry, opts ...CatalogOption) (*Catalog, error) {
	var o catalogOptions
	for _, opt := range opts {
		opt(&o)
	}

	c := &Catalog{
		meta:            meta.clone(),
		entries:         make([]Entry, 0, len(entries)),
		index:           make(map[Key]int, len(entries)),
		allowUnfinished: o.allowUnfinished,
	}
	seenContext := make(map[string]struct{})
	for _, e := range entries {
		k := e.Key()
		if i, ok := c.index[k]; ok {
			if o.duplicates == DuplicateReject {
				return nil, &domain.DuplicateError{Context: k.Context, Source: k.Source, Disambiguator: k.Disambiguator}
			}
			c.entries[i] = e.clone()
			c.duplicates = append(c.duplicates, k)
			continue
		}
		c.index[k] = len(c.entries)
		c.entries = append(c.entries, e.clone())
		if _, ok := seenContext[e.Context]; !ok {
			seenContext[e.Context] = struct{}{}
			c.contexts = append(c.contexts, e.Context)
		}
	}
	return c, nil
}

func (c *Catalog) Meta() Meta {
	return c.meta.clone()
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

// AllowsUnfinished reports whether unfinished translations are served.
func (c *Catalog) AllowsUnfinished() bool {
	return c.allowUnfinished
}

// Entries returns a copy of all entries in load order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	for i := range c.entries {
		out[i] = c.entries[i].clone()
	}
	return out
}

// Contexts returns context names in first-seen order.
func (c *Catalog) Contexts() []string {
	return append([]string(nil), c.contexts...)
}

// Duplicates returns the keys that were replaced under DuplicateLastWins.
func (c *Catalog) Duplicates() []Key {
	return append([]Key(nil), c.duplicates...)
}

// Find returns the entry stored under the exact key.
func (c *Catalog) Find(context, source, disambiguator string) (Entry, bool) {
	i, ok := c.index[Key{Context: context, Source: source, Disambiguator: disambiguator}]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i].clone(), true
}

// Resolve returns the text lookup would serve and whether the catalog had it.
// An unusable disambiguated key is retried without the disambiguator.
func (c *Catalog) Resolve(context, source, disambiguator string) (string, bool) {
	if i, ok := c.index[Key{Context: context, Source: source, Disambiguator: disambiguator}]; ok {
		if e := c.entries[i]; e.Resolves(c.allowUnfinished) {
			return e.Text(), true
		}
	}
	if disambiguator != "" {
		return c.Resolve(context, source, "")
	}
	return source, false
}

// Lookup returns the translation of source, or source itself when the
// catalog has no usable translation. It never fails.
func (c *Catalog) Lookup(context, source, disambiguator string) string {
	text, _ := c.Resolve(context, source, disambiguator)
	return text
}

func (c *Catalog) Stats() Stats {
	s := Stats{Total: len(c.entries)}
	for _, e := range c.entries {
		switch e.Status {
		case StatusFinished:
			s.Finished++
		case StatusUnfinished:
			s.Unfinished++
		default:
			s.Obsolete++
			continue
		}
		if e.Text() == "" {
			s.Untranslated++
		}
	}
	return s
}

package entities

import (
	"fmt"

	"github.com/samber/lo"

	"helpinject/internal/domain"
)

// Entry is a single key/value pair of a translation table.
type Entry struct {
	Key   string `toml:"key"`
	Value string `toml:"value"`
}

// Table holds the entries of one language, in injection order.
type Table struct {
	Language LanguageCode
	Entries  []Entry
}

// Keys returns the table keys in order.
func (t Table) Keys() []string {
	return lo.Map(t.Entries, func(e Entry, _ int) string { return e.Key })
}

// Catalog maps supported languages to their tables. It is read-only once built.
type Catalog struct {
	tables map[LanguageCode]Table
	order  []LanguageCode
}

// NewCatalog builds a catalog and checks that every table defines the same
// key set, without duplicates.
func NewCatalog(tables ...Table) (*Catalog, error) {
	c := &Catalog{tables: make(map[LanguageCode]Table, len(tables))}
	var reference []string
	for _, t := range tables {
		if _, exists := c.tables[t.Language]; exists {
			return nil, fmt.Errorf("catalog: language %s defined twice", t.Language)
		}
		keys := t.Keys()
		if dup := duplicates(keys); len(dup) > 0 {
			return nil, fmt.Errorf("catalog: %s: %w: %v", t.Language, domain.ErrDuplicateKey, dup)
		}
		if reference == nil {
			reference = keys
		} else {
			missing, extra := lo.Difference(reference, keys)
			if len(missing) > 0 || len(extra) > 0 {
				return nil, fmt.Errorf("catalog: %s: %w (missing %v, extra %v)",
					t.Language, domain.ErrInconsistentKeys, missing, extra)
			}
		}
		c.tables[t.Language] = t
		c.order = append(c.order, t.Language)
	}
	return c, nil
}

// Lookup returns the table for code, if one exists.
func (c *Catalog) Lookup(code LanguageCode) (Table, bool) {
	t, ok := c.tables[code]
	return t, ok
}

// Languages returns the languages that have a table, in load order.
func (c *Catalog) Languages() []LanguageCode {
	return append([]LanguageCode(nil), c.order...)
}

func duplicates(keys []string) []string {
	return lo.Uniq(lo.Filter(keys, func(k string, _ int) bool {
		return lo.Count(keys, k) > 1
	}))
}

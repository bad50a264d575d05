package roster

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Ordering selects how affiliation identifiers are assigned.
type Ordering string

const (
	// OrderFirstSeen numbers affiliations by first occurrence, scanning rows
	// in order and slots left to right.
	OrderFirstSeen Ordering = "first-seen"
	// OrderLexicographic numbers affiliations by sorted text.
	OrderLexicographic Ordering = "lexicographic"
)

// Collation selects the text comparison used by OrderLexicographic.
type Collation string

const (
	// CollateCodepoint compares strings by Unicode code point.
	CollateCodepoint Collation = "codepoint"
	// CollateUnicode uses the root-locale Unicode collation, falling back to
	// code point order for strings that collate equal.
	CollateUnicode Collation = "unicode"
)

// IndexOptions configures BuildIndex.
type IndexOptions struct {
	Ordering  Ordering
	Collation Collation
}

// Index is the deduplicated affiliation table with its identifier lookup.
type Index struct {
	entries []string
	ids     map[string]int
}

// BuildIndex derives the affiliation table from rows. Absent slots contribute
// nothing. The zero IndexOptions means first-seen order.
func BuildIndex(rows []Row, opts IndexOptions) *Index {
	idx := &Index{ids: make(map[string]int)}

	seen := make(map[string]bool)
	for _, row := range rows {
		for _, name := range row.AffiliationNames() {
			if seen[name] {
				continue
			}
			seen[name] = true
			idx.entries = append(idx.entries, name)
		}
	}

	if opts.Ordering == OrderLexicographic {
		sortNames(idx.entries, opts.Collation)
	}

	for i, name := range idx.entries {
		idx.ids[name] = i + 1
	}
	return idx
}

func sortNames(names []string, c Collation) {
	if c != CollateUnicode {
		sort.Strings(names)
		return
	}

	col := collate.New(language.Und)
	sort.SliceStable(names, func(i, j int) bool {
		if cmp := col.CompareString(names[i], names[j]); cmp != 0 {
			return cmp < 0
		}
		return names[i] < names[j]
	})
}

// Entries returns the affiliation strings in identifier order.
func (x *Index) Entries() []string {
	out := make([]string, len(x.entries))
	copy(out, x.entries)
	return out
}

// Len returns the number of unique affiliations.
func (x *Index) Len() int {
	return len(x.entries)
}

// ID returns the identifier ("a1", "a2", ...) assigned to an affiliation.
func (x *Index) ID(affiliation string) (string, bool) {
	n, ok := x.ids[affiliation]
	if !ok {
		return "", false
	}
	return FormatID(n), true
}

// MustID is like ID but panics when the affiliation was never indexed. That
// only happens when the index was built from a different row set.
func (x *Index) MustID(affiliation string) string {
	id, ok := x.ID(affiliation)
	if !ok {
		panic(fmt.Sprintf("roster: affiliation %q missing from index", affiliation))
	}
	return id
}

// AuthorIDs maps a row's present affiliation slots to identifiers, in slot
// order.
func (x *Index) AuthorIDs(row Row) []string {
	names := row.AffiliationNames()
	ids := make([]string, 0, len(names))
	for _, name := range names {
		ids = append(ids, x.MustID(name))
	}
	return ids
}

// FormatID renders a 1-based table position as an affiliation identifier.
func FormatID(n int) string {
	return fmt.Sprintf("a%d", n)
}

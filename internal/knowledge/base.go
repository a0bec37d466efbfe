package knowledge

import (
	"math"
	"sort"
	"strings"
)

// Base is an immutable analyte table. It is safe for concurrent use.
type Base struct {
	entries []Entry
	keys    []keyRef
	byName  map[string]int
}

type keyRef struct {
	key   string
	entry int
}

// Match is one entry found on a line. Start and End are byte offsets of the
// matched key in the folded line.
type Match struct {
	Entry Entry
	Key   string
	Start int
	End   int
}

// Ambiguity is a key shared by more than one canonical entry.
type Ambiguity struct {
	Key   string
	Names []string
}

// New validates entries and builds a Base. Keys are folded and deduplicated.
func New(entries []Entry) (*Base, error) {
	b := &Base{byName: make(map[string]int, len(entries))}
	for i, in := range entries {
		e, err := normalizeEntry(i, in)
		if err != nil {
			return nil, err
		}
		name := Fold(e.Name)
		if _, dup := b.byName[name]; dup {
			return nil, &EntryError{Index: i, Name: e.Name, Reason: "duplicate canonical name"}
		}
		b.byName[name] = len(b.entries)
		for _, k := range e.Keys {
			b.keys = append(b.keys, keyRef{key: k, entry: len(b.entries)})
		}
		b.entries = append(b.entries, e)
	}
	return b, nil
}

// MustNew is New for static tables; it panics on invalid data.
func MustNew(entries []Entry) *Base {
	b, err := New(entries)
	if err != nil {
		panic(err)
	}
	return b
}

func normalizeEntry(i int, in Entry) (Entry, error) {
	e := Entry{
		Name:     strings.TrimSpace(in.Name),
		Unit:     strings.TrimSpace(in.Unit),
		Category: in.Category,
	}
	if e.Name == "" {
		return e, &EntryError{Index: i, Reason: "empty name"}
	}
	if e.Category == "" {
		e.Category = OtherCategory
	}
	if !e.Category.Valid() {
		return e, &EntryError{Index: i, Name: e.Name, Reason: "unknown category " + string(e.Category)}
	}
	seen := make(map[string]struct{}, len(in.Keys)+1)
	for _, k := range append([]string{e.Name}, in.Keys...) {
		fk := Fold(k)
		if fk == "" {
			continue
		}
		if _, ok := seen[fk]; ok {
			continue
		}
		seen[fk] = struct{}{}
		e.Keys = append(e.Keys, fk)
	}
	if in.Range != nil {
		r := *in.Range
		if math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) {
			return e, &EntryError{Index: i, Name: e.Name, Reason: "reference range is not finite"}
		}
		if r.Min > r.Max {
			return e, &EntryError{Index: i, Name: e.Name, Reason: "reference range min exceeds max"}
		}
		e.Range = &r
	}
	return e, nil
}

// Len returns the number of canonical entries.
func (b *Base) Len() int { return len(b.entries) }

// Entries returns a copy of the entries in table order.
func (b *Base) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	for i, e := range b.entries {
		out[i] = cloneEntry(e)
	}
	return out
}

// Find resolves a canonical name or any alias to its entry.
func (b *Base) Find(name string) (Entry, bool) {
	f := Fold(name)
	if i, ok := b.byName[f]; ok {
		return cloneEntry(b.entries[i]), true
	}
	for _, kr := range b.keys {
		if kr.key == f {
			return cloneEntry(b.entries[kr.entry]), true
		}
	}
	return Entry{}, false
}

// With returns a new Base where entries replace same-named ones and new names
// are appended. The receiver is left untouched.
func (b *Base) With(entries ...Entry) (*Base, error) {
	merged := b.Entries()
	for _, e := range entries {
		if i, ok := b.byName[Fold(e.Name)]; ok {
			merged[i] = e
			continue
		}
		merged = append(merged, e)
	}
	return New(merged)
}

// Lookup returns every entry with a key in the folded line, one match per
// entry. A key occurrence lying inside a strictly longer key of a different
// entry ("hemoglobina" inside "hemoglobina glicada") is shadowed. Keys of equal
// span from different entries are all returned. Results follow table order.
func (b *Base) Lookup(folded string) []Match {
	type occ struct {
		ref        keyRef
		start, end int
	}
	var all []occ
	for _, kr := range b.keys {
		from := 0
		for {
			s, e, ok := indexWord(folded, kr.key, from)
			if !ok {
				break
			}
			all = append(all, occ{ref: kr, start: s, end: e})
			from = e
		}
	}
	if len(all) == 0 {
		return nil
	}
	best := make(map[int]occ)
	for i, o := range all {
		shadowed := false
		for j, w := range all {
			if i == j || w.ref.entry == o.ref.entry {
				continue
			}
			if w.start <= o.start && o.end <= w.end && w.end-w.start > o.end-o.start {
				shadowed = true
				break
			}
		}
		if shadowed {
			continue
		}
		cur, ok := best[o.ref.entry]
		if !ok || o.start < cur.start || (o.start == cur.start && o.end > cur.end) {
			best[o.ref.entry] = o
		}
	}
	idx := make([]int, 0, len(best))
	for i := range best {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	out := make([]Match, 0, len(idx))
	for _, i := range idx {
		o := best[i]
		out = append(out, Match{Entry: cloneEntry(b.entries[i]), Key: o.ref.key, Start: o.start, End: o.end})
	}
	return out
}

// Ambiguous lists keys that resolve to more than one canonical entry.
func (b *Base) Ambiguous() []Ambiguity {
	owners := make(map[string][]string)
	for _, kr := range b.keys {
		owners[kr.key] = append(owners[kr.key], b.entries[kr.entry].Name)
	}
	var out []Ambiguity
	for k, names := range owners {
		if len(names) > 1 {
			out = append(out, Ambiguity{Key: k, Names: names})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func cloneEntry(e Entry) Entry {
	c := e
	c.Keys = append([]string(nil), e.Keys...)
	if e.Range != nil {
		r := *e.Range
		c.Range = &r
	}
	return c
}

package knowledge

import "fmt"

// Range is a clinical reference interval. Open-ended ranges use 0 or
// MaxValue for the missing side.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// MaxValue is the upper bound used for "acima de" style ranges.
const MaxValue = 999999

// Entry describes one analyte the engine knows how to find.
type Entry struct {
	Name     string   `json:"name"`
	Keys     []string `json:"keys"`
	Unit     string   `json:"unit"`
	Category Category `json:"category"`
	Range    *Range   `json:"reference_range"`
}

// HasRange reports whether the entry carries a reference interval.
func (e Entry) HasRange() bool { return e.Range != nil }

// EntryError reports a malformed knowledge base entry.
type EntryError struct {
	Index  int
	Name   string
	Reason string
}

func (e *EntryError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("knowledge entry %d (%s): %s", e.Index, e.Name, e.Reason)
	}
	return fmt.Sprintf("knowledge entry %d: %s", e.Index, e.Reason)
}

func rng(min, max float64) *Range { return &Range{Min: min, Max: max} }

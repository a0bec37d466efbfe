package extract

import "github.com/KaramelBytes/labloom-cli/internal/knowledge"

// IsPlausible reports whether v could be a reading of e: within half of the
// lower bound and one and a half times the upper bound. Entries without a
// range accept anything.
func IsPlausible(e knowledge.Entry, v float64) bool {
	if e.Range == nil {
		return true
	}
	lo := e.Range.Min * 0.5
	if e.Range.Min <= 0 {
		lo = 0
	}
	hi := e.Range.Max * 1.5
	return lo <= v && v <= hi
}

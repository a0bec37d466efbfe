package extract

import "github.com/KaramelBytes/labloom-cli/internal/knowledge"

// Classify maps a value onto its reference range.
func Classify(v float64, r *knowledge.Range) Status {
	switch {
	case r == nil:
		return StatusIndeterminate
	case v < r.Min:
		return StatusLow
	case v > r.Max:
		return StatusHigh
	default:
		return StatusNormal
	}
}

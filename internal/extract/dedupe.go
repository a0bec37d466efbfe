package extract

import (
	"math"
	"strings"
)

type dedupeKey struct {
	name  string
	value float64
}

// Dedupe keeps one parameter per (lowercased name, value rounded to one
// decimal): the highest confidence, first seen on ties. Groups keep the order
// in which they were first seen.
func Dedupe(candidates []Parameter) []Parameter {
	index := make(map[dedupeKey]int, len(candidates))
	out := make([]Parameter, 0, len(candidates))
	for _, c := range candidates {
		k := dedupeKey{name: strings.ToLower(c.Name), value: math.Round(c.Value*10) / 10}
		i, ok := index[k]
		if !ok {
			index[k] = len(out)
			out = append(out, c)
			continue
		}
		if c.Confidence > out[i].Confidence {
			out[i] = c
		}
	}
	return out
}

// FilterByConfidence drops parameters below threshold. The bound is inclusive.
func FilterByConfidence(params []Parameter, threshold float64) []Parameter {
	out := make([]Parameter, 0, len(params))
	for _, p := range params {
		if p.Confidence >= threshold {
			out = append(out, p)
		}
	}
	return out
}

package extract

import (
	"math"
	"strings"

	"github.com/KaramelBytes/labloom-cli/internal/knowledge"
	"go.uber.org/zap"
)

// Base confidences per discovery method. The marker tier outranks the
// same-line tier.
const (
	sameLineConfidence = 0.8
	forwardConfidence  = 0.7
	markerConfidence   = 0.9

	implausiblePenalty = 0.5
	unitBonus          = 0.05
)

// Options bounds the forward scans after a name match.
type Options struct {
	ForwardWindow int
	MarkerWindow  int
}

// DefaultOptions returns the standard windows: three lines forward, four
// lines for the "resultado" marker.
func DefaultOptions() Options {
	return Options{ForwardWindow: 3, MarkerWindow: 4}
}

func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.ForwardWindow < 0 {
		o.ForwardWindow = d.ForwardWindow
	}
	if o.MarkerWindow < 0 {
		o.MarkerWindow = d.MarkerWindow
	}
	return o
}

// Search returns every candidate for e in doc. Candidates are not
// deduplicated.
func Search(e knowledge.Entry, doc *Document, opt Options) []Parameter {
	s := searcher{opt: opt.normalized(), log: zap.NewNop()}
	return s.search(e, doc)
}

type searcher struct {
	opt Options
	log *zap.Logger
}

func (s searcher) search(e knowledge.Entry, doc *Document) []Parameter {
	var out []Parameter
	for i, ln := range doc.Lines {
		m, ok := ln.match(e.Name)
		if !ok {
			continue
		}
		if p, ok := s.sameLine(e, ln, m); ok {
			out = append(out, p)
			continue
		}
		var hit *Parameter
		if p, ok := s.scan(e, doc, i, s.opt.ForwardWindow, false, forwardConfidence); ok {
			hit = &p
		}
		if p, ok := s.scan(e, doc, i, s.opt.MarkerWindow, true, markerConfidence); ok {
			hit = &p
		}
		if hit != nil {
			out = append(out, *hit)
		}
	}
	return out
}

// sameLine reads the value that follows the matched key. The value is kept
// even when implausible, at reduced confidence.
func (s searcher) sameLine(e knowledge.Entry, ln Line, m knowledge.Match) (Parameter, bool) {
	after := ln.textOffset(m.End)
	r, ok := locate(ln.Text[after:])
	if !ok {
		return Parameter{}, false
	}
	r.Start += after
	r.End += after
	v := resolveValue(e, r)
	conf := sameLineConfidence
	if !IsPlausible(e, v) {
		conf *= implausiblePenalty
		s.log.Debug("implausible same-line value",
			zap.String("parameter", e.Name), zap.Float64("value", v), zap.String("line", ln.Text))
	}
	if r.Unit != "" && strings.EqualFold(r.Unit, e.Unit) {
		conf += unitBonus
	}
	return newParameter(e, v, unitFor(e, r), conf, ln.Text, ln, r), true
}

// scan looks at up to window lines after i for the first plausible value.
// With marker set only lines containing "resultado" are considered.
func (s searcher) scan(e knowledge.Entry, doc *Document, i, window int, marker bool, conf float64) (Parameter, bool) {
	name := doc.Lines[i]
	for j := i + 1; j <= i+window && j < len(doc.Lines); j++ {
		ln := doc.Lines[j]
		if marker && !ln.marker {
			continue
		}
		r, ok := locate(ln.Text)
		if !ok {
			continue
		}
		v := resolveValue(e, r)
		if !IsPlausible(e, v) {
			s.log.Debug("implausible value rejected",
				zap.String("parameter", e.Name), zap.Float64("value", v),
				zap.Int("line", j), zap.Bool("marker", marker))
			continue
		}
		return newParameter(e, v, unitFor(e, r), conf, name.Text+"\n"+ln.Text, ln, r), true
	}
	return Parameter{}, false
}

// resolveValue prefers the thousands reading of tokens like "280.000" when
// only that reading is plausible for e.
func resolveValue(e knowledge.Entry, r reading) float64 {
	if r.HasGrouped && !IsPlausible(e, r.Value) && IsPlausible(e, r.Grouped) {
		return r.Grouped
	}
	return r.Value
}

func unitFor(e knowledge.Entry, r reading) string {
	if r.Unit != "" {
		return r.Unit
	}
	return e.Unit
}

func newParameter(e knowledge.Entry, v float64, unit string, conf float64, text string, ln Line, r reading) Parameter {
	var rng *knowledge.Range
	if e.Range != nil {
		c := *e.Range
		rng = &c
	}
	return Parameter{
		Name:           e.Name,
		Value:          v,
		Unit:           unit,
		ReferenceRange: rng,
		Status:         Classify(v, e.Range),
		Category:       e.Category,
		Confidence:     roundTo(math.Min(conf, 1), 2),
		OriginalText:   text,
		Position:       &Position{Start: ln.Offset + r.Start, End: ln.Offset + r.End},
	}
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

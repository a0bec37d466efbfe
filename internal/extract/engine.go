package extract

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/KaramelBytes/labloom-cli/internal/knowledge"
	"go.uber.org/zap"
)

// DefaultThreshold is the inclusive confidence bound used when callers pass
// none.
const DefaultThreshold = 0.3

// Engine extracts parameters from report text. It holds only read-only
// state and is safe for concurrent use.
type Engine struct {
	base *knowledge.Base
	opt  Options
	log  *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for debug traces and failures.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithOptions overrides the search windows.
func WithOptions(o Options) Option {
	return func(e *Engine) { e.opt = o.normalized() }
}

// New builds an engine over base; a nil base selects knowledge.Default().
func New(base *knowledge.Base, opts ...Option) *Engine {
	if base == nil {
		base = knowledge.Default()
	}
	e := &Engine{base: base, opt: DefaultOptions(), log: zap.NewNop()}
	for _, o := range opts {
		o(e)
	}
	for _, a := range base.Ambiguous() {
		e.log.Debug("ambiguous knowledge key", zap.String("key", a.Key), zap.Strings("entries", a.Names))
	}
	return e
}

// Base returns the knowledge base the engine searches.
func (e *Engine) Base() *knowledge.Base { return e.base }

// Parse runs the full pipeline. Panics inside the pipeline are returned as
// *InternalError. A NaN threshold selects DefaultThreshold.
func (e *Engine) Parse(text string, threshold float64) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = &InternalError{Op: "parse", Panic: r}
		}
	}()
	if math.IsNaN(threshold) {
		threshold = DefaultThreshold
	}
	start := time.Now()

	doc := NewDocument(text, e.base)
	s := searcher{opt: e.opt, log: e.log}
	var candidates []Parameter
	for _, entry := range e.base.Entries() {
		candidates = append(candidates, s.search(entry, doc)...)
	}
	params := FilterByConfidence(Dedupe(candidates), threshold)
	cats, stats := Aggregate(params)

	res = &Result{
		Parameters:      params,
		Categories:      cats,
		Statistics:      stats,
		TotalParameters: len(params),
		ConfidenceAvg:   averageConfidence(params),
		ExamType:        examType(doc),
		Patient:         extractPatient(doc),
		Laboratory:      extractLaboratory(doc),
		Insights:        Insights(params),
	}
	e.log.Debug("parse complete",
		zap.Int("lines", len(doc.Lines)),
		zap.Int("candidates", len(candidates)),
		zap.Int("parameters", len(params)),
		zap.Float64("threshold", threshold),
		zap.Duration("elapsed", time.Since(start)))
	return res, nil
}

// Response is the boundary form of a parse: either a result or an error
// message, never both.
type Response struct {
	Result *Result
	Err    error
}

// MarshalJSON renders the result verbatim, or {"error": "..."} on failure.
func (r Response) MarshalJSON() ([]byte, error) {
	if r.Err != nil {
		return json.Marshal(struct {
			Error string `json:"error"`
		}{r.Err.Error()})
	}
	if r.Result == nil {
		return json.Marshal(struct {
			Error string `json:"error"`
		}{"no result"})
	}
	return json.Marshal(r.Result)
}

// Respond is Parse for callers that serialize the outcome directly. Failures
// are logged and carried in the response.
func (e *Engine) Respond(text string, threshold float64) Response {
	res, err := e.Parse(text, threshold)
	if err != nil {
		e.log.Error("parse failed", zap.Error(err))
		return Response{Err: fmt.Errorf("parse medical text: %w", err)}
	}
	return Response{Result: res}
}

package syntax

import (
	"sync"
	"sync/atomic"
)

// tables is the immutable pair a classification pass reads. Swapping the
// pointer replaces both tables at once so no pass ever sees a rule table
// compiled from one configuration next to a syntax table from another.
type tables struct {
	rules *RuleTable
	chars *SyntaxTable
}

// A Highlighter is the public entry point for classifying buffers. It owns
// the compiled tables; reads are lock-free and any number of goroutines may
// classify disjoint buffers or regions concurrently. Configure swaps in a
// freshly compiled table pair, or leaves the previous pair active when the
// new configuration fails to compile.
type Highlighter struct {
	current atomic.Pointer[tables]
	gen     atomic.Uint64
	mu      sync.Mutex // serializes Configure
}

// New compiles cfg and returns a ready Highlighter.
func New(cfg Config) (*Highlighter, error) {
	h := &Highlighter{}
	if err := h.Configure(cfg); err != nil {
		return nil, err
	}
	return h, nil
}

// Configure recompiles the rule table from cfg and atomically publishes it
// together with a fresh syntax table. On error the previous tables remain
// active and the generation does not advance. In-flight classification
// passes are unaffected either way; they finish on the pair they started
// with.
func (h *Highlighter) Configure(cfg Config) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	rules, err := Compile(cfg)
	if err != nil {
		return err
	}
	h.current.Store(&tables{rules: rules, chars: NewSyntaxTable()})
	h.gen.Add(1)
	return nil
}

// Generation increments with every successful Configure. Consumers caching
// spans compare generations to decide whether their cache still describes
// the active tables.
func (h *Highlighter) Generation() uint64 {
	return h.gen.Load()
}

// Classify returns the spans for the whole buffer.
func (h *Highlighter) Classify(src []byte) []Span {
	return h.ClassifyRegion(src, 0, len(src))
}

// ClassifyRegion returns the spans for [start, end) of src. The result is
// complete and internally consistent for that region; callers refreshing
// overlapping regions should keep only the result from the newest request.
func (h *Highlighter) ClassifyRegion(src []byte, start, end int) []Span {
	t := h.current.Load()
	if t == nil {
		return nil
	}
	return t.rules.Classify(src, start, end, t.chars)
}

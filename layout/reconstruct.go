package layout

import (
	"log/slog"

	"github.com/tsawler/textpage/text"
)

// LineSpan is a half-open range [Start, End) of entity indices forming one
// text line
type LineSpan struct {
	Start int
	End   int
}

// Len returns the number of entities in the line
func (s LineSpan) Len() int {
	return s.End - s.Start
}

// Result is the outcome of reconstruction: entities in reading order and the
// partition of that sequence into lines
type Result struct {
	Entities []text.Entity
	Lines    []LineSpan
}

// LineOf returns the index of the line holding entity i, or -1
func (r Result) LineOf(i int) int {
	lo, hi := 0, len(r.Lines)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case i < r.Lines[mid].Start:
			hi = mid
		case i >= r.Lines[mid].End:
			lo = mid + 1
		default:
			return mid
		}
	}
	return -1
}

// Reconstructor turns an unordered bag of entities into words and lines in
// reading order
type Reconstructor struct {
	config Config
	logger *slog.Logger
}

// NewReconstructor creates a new reconstructor with default configuration
func NewReconstructor() *Reconstructor {
	return &Reconstructor{
		config: DefaultConfig(),
	}
}

// NewReconstructorWithConfig creates a reconstructor with custom configuration
func NewReconstructorWithConfig(config Config) *Reconstructor {
	return &Reconstructor{
		config: config,
	}
}

// SetLogger sets the logger used for pass diagnostics. A nil logger
// disables logging.
func (r *Reconstructor) SetLogger(logger *slog.Logger) {
	r.logger = logger
}

// Config returns the configuration in use
func (r *Reconstructor) Config() Config {
	return r.config
}

// Run applies every pass in order. The input slice is not modified.
func (r *Reconstructor) Run(entities []text.Entity, granularity text.Granularity) Result {
	if len(entities) == 0 {
		return Result{}
	}
	r.debug("reconstruct start", "entities", len(entities), "granularity", granularity.String())

	// Step 1: Drop oversized separator glyphs before they distort clustering
	out := r.RemoveSpace(entities)
	r.debug("pass done", "pass", "removeSpace", "entities", len(out))

	// Word gaps and space gaps are both measured against the character
	// width before merging
	avg := averageCharWidth(out)

	// Step 2: Join characters into words
	if granularity == text.Character {
		out = r.makeWord(out, avg)
		r.debug("pass done", "pass", "makeWord", "entities", len(out))
	}

	// Step 3: Put drawing-order sources into approximate reading order
	out = r.CorrectTextOrder(out)

	// Step 4: Cluster into lines and sort
	out, lines := r.MakeAndSortLines(out)
	r.debug("pass done", "pass", "makeAndSortLines", "lines", len(lines))

	// Step 5: Synthesize spaces the source never emitted
	out, lines = r.addNecessarySpace(out, lines, avg)
	r.debug("reconstruct done", "entities", len(out), "lines", len(lines))

	return Result{Entities: out, Lines: lines}
}

func (r *Reconstructor) debug(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Debug(msg, args...)
	}
}

package layout

// Config holds the thresholds used by the reconstruction passes. Ratios are
// relative to the page's average (or median) character width, which makes
// every threshold adapt to the page's font size.
type Config struct {
	// OversizedSpaceRatio drops a single-space entity whose width exceeds this
	// multiple of the median character width (default: 3.0)
	OversizedSpaceRatio float64

	// WordGapRatio is the largest horizontal gap, as a fraction of the
	// average character width, across which characters are joined into one
	// word (default: 0.5)
	WordGapRatio float64

	// KerningTolerance is how far, as a fraction of the average character
	// width, a character may overlap its predecessor and still be joined
	// (default: 0.15)
	KerningTolerance float64

	// MinVerticalOverlap is the vertical overlap, as a fraction of the
	// shorter entity's height, above which two entities share a line
	// (default: 0.5)
	MinVerticalOverlap float64

	// SpaceGapRatio is the gap, as a fraction of the average character width,
	// above which a synthetic space is inserted between entities (default: 0.5)
	SpaceGapRatio float64

	// SpaceGap is an absolute gap threshold in page units. When positive it
	// overrides SpaceGapRatio.
	SpaceGap float64

	// DuplicateOverlap drops an entity whose text equals an earlier entity's
	// and whose area overlaps it with at least this intersection over union,
	// as when a source draws a glyph twice to fake bold. Zero disables the
	// check (default: 0.9)
	DuplicateOverlap float64
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		OversizedSpaceRatio: 3.0,
		WordGapRatio:        0.5,
		KerningTolerance:    0.15,
		MinVerticalOverlap:  0.5,
		SpaceGapRatio:       0.5,
		SpaceGap:            0,
		DuplicateOverlap:    0.9,
	}
}

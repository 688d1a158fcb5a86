package textpage

import (
	"log/slog"

	"github.com/tsawler/textpage/layout"
	"github.com/tsawler/textpage/text"
)

// Options holds configuration for a Page.
type Options struct {
	// Granularity of the fragments appended to the page. Only Character
	// pages run word merging (default: text.Character)
	Granularity text.Granularity

	// Layout holds the reconstruction thresholds (default: layout.DefaultConfig())
	Layout layout.Config

	// Logger receives reconstruction diagnostics at Debug level. Nil
	// disables logging.
	Logger *slog.Logger
}

// DefaultOptions returns the default page options.
func DefaultOptions() Options {
	return Options{
		Granularity: text.Character,
		Layout:      layout.DefaultConfig(),
		Logger:      nil,
	}
}

// WithGranularity returns a copy of the options using granularity g.
func (o Options) WithGranularity(g text.Granularity) Options {
	o.Granularity = g
	return o
}

// WithLayout returns a copy of the options using the given thresholds.
func (o Options) WithLayout(config layout.Config) Options {
	o.Layout = config
	return o
}

// WithLogger returns a copy of the options logging to logger.
func (o Options) WithLogger(logger *slog.Logger) Options {
	o.Logger = logger
	return o
}

// withDefaults fills a zero layout config so Options{} behaves like
// DefaultOptions with the caller's granularity.
func (o Options) withDefaults() Options {
	if o.Layout == (layout.Config{}) {
		o.Layout = layout.DefaultConfig()
	}
	return o
}

package deltalog

import (
	"context"
	"time"
)

// DefaultRootLabel is the starting path segment used when no label is given
const DefaultRootLabel = "root"

// Config are any possible configuration parameters for building a Comparer
type Config struct {
	// IgnoreKeys names mapping keys whose changes should not be reported.
	// ignoring applies only to keys already present in the prior value: a
	// key on the ignore list that is newly introduced in latest is still
	// reported as Added. sequence indices are never ignored.
	IgnoreKeys []string
	// FilterKeys names mapping keys removed (at every nesting level) from
	// values before they're attached to output entries. filtering never
	// affects change detection, only what is reported.
	FilterKeys []string
	// Reporter receives a label & elapsed-time measurement after each
	// top-level comparison. defaults to a no-op.
	Reporter Reporter
	// Provide a non-nil stats pointer & each comparison will populate it
	// with a tally of the changes found
	Stats *Stats
}

// Option is a function that adjusts a config, zero or more Options can be
// passed to New & Compare
type Option func(cfg *Config)

// OptionIgnoreKeys sets the mapping keys to skip while comparing
func OptionIgnoreKeys(keys ...string) Option {
	return func(cfg *Config) {
		cfg.IgnoreKeys = keys
	}
}

// OptionFilterKeys sets the mapping keys redacted from reported values
func OptionFilterKeys(keys ...string) Option {
	return func(cfg *Config) {
		cfg.FilterKeys = keys
	}
}

// OptionReporter directs comparison timing diagnostics to r
func OptionReporter(r Reporter) Option {
	return func(cfg *Config) {
		cfg.Reporter = r
	}
}

// OptionSetStats will populate the passed-in stats pointer on each comparison
func OptionSetStats(st *Stats) Option {
	return func(cfg *Config) {
		cfg.Stats = st
	}
}

// Comparer calculates changelogs. configuration is bound once at
// construction & constant across all calls made through the instance, which
// is safe for concurrent use.
type Comparer struct {
	ignore   map[string]struct{}
	filter   map[string]struct{}
	reporter Reporter
	stats    *Stats
}

// New creates a Comparer from zero or more options
func New(opts ...Option) *Comparer {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}

	c := &Comparer{
		ignore:   make(map[string]struct{}, len(cfg.IgnoreKeys)),
		filter:   make(map[string]struct{}, len(cfg.FilterKeys)),
		reporter: cfg.Reporter,
		stats:    cfg.Stats,
	}
	for _, key := range cfg.IgnoreKeys {
		c.ignore[key] = struct{}{}
	}
	for _, key := range cfg.FilterKeys {
		c.filter[key] = struct{}{}
	}
	if c.reporter == nil {
		c.reporter = nopReporter{}
	}
	return c
}

// Compare is a convenience for one-off comparisons with the default root
// label
func Compare(ctx context.Context, prior, latest interface{}, opts ...Option) (Changelog, error) {
	return New(opts...).Compare(ctx, prior, latest)
}

// Compare computes the changelog between prior & latest, rooted at
// DefaultRootLabel
func (c *Comparer) Compare(ctx context.Context, prior, latest interface{}) (Changelog, error) {
	return c.CompareRoot(ctx, prior, latest, DefaultRootLabel)
}

// CompareRoot computes the changelog between prior & latest with paths rooted
// at rootLabel. both values must be non-nil. a function value found at any
// compared position aborts the whole comparison: on error no changelog is
// produced, partial results are never surfaced.
func (c *Comparer) CompareRoot(ctx context.Context, prior, latest interface{}, rootLabel string) (Changelog, error) {
	start := time.Now()
	defer func() {
		c.reporter.Timing(rootLabel, time.Since(start))
	}()

	if prior == nil || latest == nil {
		return nil, ErrInvalidInput
	}
	if rootLabel == "" {
		rootLabel = DefaultRootLabel
	}

	cl := Changelog{}
	if !equalByContent(prior, latest) {
		var err error
		if cl, err = c.compare(ctx, prior, latest, rootLabel); err != nil {
			return nil, err
		}
	}

	if c.stats != nil {
		c.stats.tally(cl)
	}
	return cl, nil
}

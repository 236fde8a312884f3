package atwt

import (
	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"

	"github.com/gogpu/atwt/internal/filter"
	"github.com/gogpu/atwt/internal/parallel"
)

// Option configures an Extractor, a Replacer or a one-shot operation.
//
// Example:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	detail, err := atwt.ExtractFrequency(src, 2, atwt.WithPool(pool))
type Option func(*options)

// options holds optional configuration.
type options struct {
	pool   *workerpool.Pool
	planes bool
}

// defaultOptions returns the default options: single-threaded processing.
func defaultOptions() options {
	return options{}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithPool splits each pass of an operation across the workers of pool by
// row ranges. Output is identical to single-threaded processing.
//
// The pool is owned by the caller and may be shared between operations.
// A nil pool selects single-threaded processing.
func WithPool(pool *workerpool.Pool) Option {
	return func(o *options) {
		o.pool = pool
	}
}

// WithConcurrentPlanes processes the planes of a frame side by side on a
// shared work-stealing pool sized to GOMAXPROCS. It affects ProcessFrame,
// SubtractFrame and the pyramid frame functions; single planes are
// unaffected. Output is identical to sequential processing.
func WithConcurrentPlanes() Option {
	return func(o *options) {
		o.planes = true
	}
}

// forEachPlane runs fn for every plane index, concurrently when configured.
func (o options) forEachPlane(n int, fn func(i int) error) error {
	if o.planes && n > 1 {
		return parallel.Shared().ForEach(n, fn)
	}
	for i := range n {
		if err := fn(i); err != nil {
			return err
		}
	}
	return nil
}

// runner returns the row runner for the configured pool.
func (o options) runner() filter.RowRunner {
	if o.pool == nil {
		return filter.Sequential
	}
	return o.pool
}

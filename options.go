package pixbuf

// Option configures a single pixbuf call.
// Use functional options to customize allocation, filtering and parallelism.
//
// Example:
//
//	// Default: bilinear, heap allocation, runs on the calling goroutine
//	out, err := pixbuf.Resize(frame, 224, 224)
//
//	// Area filter, buffers recycled from a pool, rows split across workers
//	out, err := pixbuf.Resize(frame, 224, 224,
//	    pixbuf.WithFilter(pixbuf.FilterArea),
//	    pixbuf.WithAllocator(pool),
//	    pixbuf.WithWorkerPool(workers))
type Option func(*options)

// options holds the configuration for one call.
type options struct {
	alloc  Allocator
	filter Filter
	pool   *WorkerPool
}

// defaultOptions returns the default call options.
func defaultOptions() options {
	return options{
		alloc:  HeapAllocator{},
		filter: FilterBilinear,
		pool:   nil, // serial
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithAllocator sets where destination buffers come from.
// Passing nil restores the default HeapAllocator. ResizeInto ignores it.
//
// Example:
//
//	pool := pixbuf.NewPool(4, nil)
//	out, err := pixbuf.Rotate90(frame, 1, pixbuf.WithAllocator(pool))
//	// ... use out ...
//	pool.Release(out)
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		if a == nil {
			a = HeapAllocator{}
		}
		o.alloc = a
	}
}

// WithFilter selects the resampling filter. Rotate90 ignores it.
func WithFilter(f Filter) Option {
	return func(o *options) {
		o.filter = f
	}
}

// WithWorkerPool spreads destination rows over p.
// The call still returns only after all rows are written, and the output is
// identical to the serial result. A nil or closed pool means serial.
func WithWorkerPool(p *WorkerPool) Option {
	return func(o *options) {
		o.pool = p
	}
}

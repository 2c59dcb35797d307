package poolparty

// Options contains configuration options shared by all pool strategies.
type Options struct {
	// InitialCapacity pre-sizes the pool for this many slots. The block
	// strategies round it up to a whole number of blocks.
	InitialCapacity int

	// GrowthFactor multiplies the capacity when no free slot remains.
	// Values below 2 are clamped to 2.
	GrowthFactor int

	// Logger receives debug events such as capacity growth. Defaults to
	// a noop logger.
	Logger *Logger
}

// DefaultOptions contains the default configuration options for a pool.
var DefaultOptions = Options{
	InitialCapacity: 0,
	GrowthFactor:    2,
}

// WithInitialCapacity pre-sizes the pool for n slots.
func WithInitialCapacity(n int) func(o *Options) {
	return func(o *Options) {
		o.InitialCapacity = n
	}
}

// WithGrowthFactor sets the capacity multiplier used on exhaustion.
func WithGrowthFactor(factor int) func(o *Options) {
	return func(o *Options) {
		o.GrowthFactor = factor
	}
}

// WithLogger sets the logger used for debug events.
func WithLogger(logger *Logger) func(o *Options) {
	return func(o *Options) {
		o.Logger = logger
	}
}

func applyOptions(optFns []func(o *Options)) Options {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.InitialCapacity < 0 {
		opts.InitialCapacity = 0
	}
	if opts.GrowthFactor < 2 {
		opts.GrowthFactor = 2
	}
	if opts.Logger == nil {
		opts.Logger = NoopLogger()
	}

	return opts
}

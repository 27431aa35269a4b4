package marker

// Option configures a marker factory during creation.
//
// Example:
//
//	// Default 3.0-unit squares
//	sq := marker.NewSquare()
//
//	// 8-unit stars
//	st := marker.NewStar(marker.WithSize(8))
type Option func(*options)

// options holds optional configuration for factory creation.
type options struct {
	size float64
}

// defaultOptions returns the default factory options.
func defaultOptions() options {
	return options{size: DefaultSize}
}

// WithSize sets the marker size. Any value is accepted, including zero
// and negative sizes, which produce degenerate (zero-area or
// point-reflected) geometry rather than an error.
func WithSize(size float64) Option {
	return func(o *options) {
		o.size = size
	}
}

// applyOptions resolves the option list against the defaults.
func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

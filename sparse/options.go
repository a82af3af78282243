package sparse

// Options configures construction of sparse containers.
// Use DefaultOptions() for the default setup (validation enabled).
type Options struct {
	// Validate enables structural validation of the raw input sequences.
	Validate bool
}

// Option mutates Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithoutValidation skips structural validation at construction.
// Intended for input that is well formed by construction, such as buffers
// returned by the graph loader or produced by this package's conversions.
// Malformed input under this option leads to undefined behavior.
func WithoutValidation() Option {
	return func(o *Options) { o.Validate = false }
}

// DefaultOptions returns Options with validation enabled.
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{Validate: true}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

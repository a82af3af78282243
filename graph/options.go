package graph

// options collects optional wrapper state gathered at construction.
type options struct {
	attrs []float64
}

// Option configures a Graph or Bipartite under construction.
type Option func(*options)

// WithAttributes attaches one float64 attribute per node. The length is
// checked against the node count by the constructor.
func WithAttributes(attrs []float64) Option {
	return func(o *options) { o.attrs = attrs }
}

// gatherOptions folds opts over zero-valued defaults.
func gatherOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

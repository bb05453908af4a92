package eigen

// DefaultMaxIterations bounds the QL/QR iteration count spent on a single
// eigenvalue before the decomposition gives up on it and keeps the current
// approximation. Convergence normally takes well under 50 iterations per
// eigenvalue; the generous default only matters for pathological input.
const DefaultMaxIterations = 1000

// Options configures the eigendecomposition iteration.
//
// MaxIterations – per-eigenvalue cap on QL/QR sweeps. Must be > 0.
type Options struct {
	MaxIterations int
}

// Option represents a functional option for configuring the decomposition.
type Option func(*Options)

// WithMaxIterations overrides the per-eigenvalue iteration budget.
// Must pass a positive value; zero or negative panic, signaling an invalid
// configuration at the call site.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("eigen: MaxIterations must be positive")
		}
		o.MaxIterations = n
	}
}

// DefaultOptions returns an Options struct initialized with the defaults.
// Use this as a starting point for further functional-options overrides.
func DefaultOptions() Options {
	return Options{MaxIterations: DefaultMaxIterations}
}

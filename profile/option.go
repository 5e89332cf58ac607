//go:build pprof

package profile

// Option adds to the set of profiler arguments in a setup.
type Option func(setup) setup

// apply folds the given options over a setup.
func apply(s setup, opts ...Option) setup {
	for _, opt := range opts {
		s = opt(s)
	}

	return s
}

// makeSetup builds a setup from the given options.
func makeSetup(opts ...Option) setup {
	var s setup

	return apply(s, opts...)
}

package log

// Option rewrites one field of a logger configuration.
type Option func(config) config

// apply folds the given options over a config, left to right.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

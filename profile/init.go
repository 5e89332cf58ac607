package profile

// Config yields the three profiler parameters: mode name, output
// directory, and whether console output is suppressed.
type Config func() (mode, path string, quiet bool)

// Start runs the profiler described by the Config and returns a handle
// whose Stop flushes the profile.
//
// With an empty mode, or in builds without the pprof tag, the returned
// handle is a no-op. Start and Stop never fail.
func (c Config) Start() interface{ Stop() } {
	mode, path, quiet := c()

	if mode == "" {
		return ignore{}
	}

	return start(mode, path, quiet)
}

// WithMode returns a Config transformer that replaces the mode name.
func WithMode(mode string) func(Config) Config {
	return func(c Config) Config {
		_, path, quiet := c()

		return func() (string, string, bool) {
			return mode, path, quiet
		}
	}
}

// WithPath returns a Config transformer that replaces the output directory.
func WithPath(path string) func(Config) Config {
	return func(c Config) Config {
		mode, _, quiet := c()

		return func() (string, string, bool) {
			return mode, path, quiet
		}
	}
}

// WithQuiet returns a Config transformer that replaces the quiet flag.
func WithQuiet(quiet bool) func(Config) Config {
	return func(c Config) Config {
		mode, path, _ := c()

		return func() (string, string, bool) {
			return mode, path, quiet
		}
	}
}

// ignore satisfies the Stop interface without doing anything.
type ignore struct{}

func (ignore) Stop() {}

//go:build pprof

package profile

import (
	"maps"
	"slices"
	"sync"

	"github.com/pkg/profile"

	_ "net/http/pprof" // register HTTP handlers
)

// Modes returns the selectable profiling mode names, sorted. The output
// toggle "quiet" is not a mode and is excluded.
var Modes = sync.OnceValue(
	func() []string {
		m := maps.Clone(mode)
		delete(m, "quiet")

		return slices.Sorted(maps.Keys(m))
	},
)

// mode maps each flag-facing name to its pkg/profile selector.
var mode = map[string]func(*profile.Profile){
	"block":     profile.BlockProfile,
	"cpu":       profile.CPUProfile,
	"clock":     profile.ClockProfile,
	"goroutine": profile.GoroutineProfile,
	"mem":       profile.MemProfile,
	"allocs":    profile.MemProfileAllocs,
	"heap":      profile.MemProfileHeap,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
	"quiet":     profile.Quiet,
}

// setup accumulates the pkg/profile arguments selected by options.
type setup struct {
	args []func(*profile.Profile)
}

func start(name, path string, quiet bool) interface{ Stop() } {
	s := makeSetup(withMode(name))

	// An unknown mode name selects nothing.
	if len(s.args) == 0 {
		return ignore{}
	}

	return profile.Start(
		apply(s, withPath(path), withQuiet(quiet)).args...,
	)
}

func withMode(name string) Option {
	return func(s setup) setup {
		if fn, ok := mode[name]; ok {
			s.args = append(s.args, fn)
		}

		return s
	}
}

func withPath(p string) Option {
	return func(s setup) setup {
		if p != "" {
			s.args = append(s.args, profile.ProfilePath(p))
		}

		return s
	}
}

func withQuiet(v bool) Option {
	return func(s setup) setup {
		if v {
			s.args = append(s.args, profile.Quiet)
		}

		return s
	}
}

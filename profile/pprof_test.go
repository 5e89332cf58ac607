//go:build pprof

package profile

import (
	"slices"
	"testing"
)

func TestModes(t *testing.T) {
	modes := Modes()

	// Callers join the returned slice directly, so it must arrive sorted.
	if !slices.IsSorted(modes) {
		t.Errorf("expected sorted mode list, got %v", modes)
	}

	if slices.Contains(modes, "quiet") {
		t.Error("quiet is an output toggle, not a selectable mode")
	}

	for _, want := range []string{"cpu", "heap", "trace"} {
		if !slices.Contains(modes, want) {
			t.Errorf("expected mode %q in %v", want, modes)
		}
	}
}

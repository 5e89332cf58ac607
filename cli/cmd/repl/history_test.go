package repl

import (
	"path/filepath"
	"testing"
)

func TestHistoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)

	if _, err := h.WriteWithMode("(a b)", modeParse); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if _, err := h.WriteWithMode("help", modeCtrl); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	// A fresh instance reads the same entries with their modes.
	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	entries := reloaded.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if entries[0].Line != "(a b)" || entries[0].Mode != modeParse {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}

	if entries[1].Line != "help" || entries[1].Mode != modeCtrl {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
}

func TestHistoryDeduplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)

	for _, line := range []string{"x", "y", "x"} {
		if _, err := h.WriteWithMode(line, modeParse); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}

	entries := h.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected duplicate removal, got %d entries", len(entries))
	}

	// The repeated entry moves to the end.
	if entries[0].Line != "y" || entries[1].Line != "x" {
		t.Errorf("unexpected order: %+v", entries)
	}
}

func TestHistorySkipsEmptyAndRepeated(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	h := NewHistory(path)

	_, _ = h.WriteWithMode("", modeParse)
	_, _ = h.WriteWithMode("   ", modeParse)
	_, _ = h.WriteWithMode("x", modeParse)
	_, _ = h.WriteWithMode("x", modeParse)

	if h.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", h.Len())
	}
}

func TestHistoryGetEntryBounds(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), baseHistory))

	if _, err := h.GetEntry(0); err != ErrOutOfBounds {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}

	_, _ = h.WriteWithMode("x", modeParse)

	if _, err := h.GetEntry(-1); err != ErrOutOfBounds {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}

	if entry, err := h.GetEntry(0); err != nil || entry.Line != "x" {
		t.Errorf("expected entry x, got (%+v, %v)", entry, err)
	}
}

func TestHistoryLoadMissingFile(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "missing"))

	if err := h.Load(); err != nil {
		t.Errorf("missing history file should not error: %v", err)
	}

	if h.Len() != 0 {
		t.Errorf("expected empty history, got %d entries", h.Len())
	}
}

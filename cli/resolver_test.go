package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func TestLoadYAML(t *testing.T) {
	source := `
log_level: debug
log-format: text
log_pretty: true
indent: 4
`

	resolver, err := loadYAML(strings.NewReader(source))
	if err != nil {
		t.Fatalf("loadYAML failed: %v", err)
	}

	cases := []struct {
		flag string
		want any
	}{
		{"log-level", "debug"},  // underscore key matches hyphenated flag
		{"log-format", "text"},  // exact key match
		{"log-pretty", true},
		{"indent", "4"},         // numbers resolve as strings for kong
		{"missing", nil},
	}

	for _, tc := range cases {
		got, err := resolver.Resolve(nil, nil, &kong.Flag{
			Value: &kong.Value{Name: tc.flag},
		})
		if err != nil {
			t.Fatalf("Resolve(%q) failed: %v", tc.flag, err)
		}

		if got != tc.want {
			t.Errorf("Resolve(%q) = %v, want %v", tc.flag, got, tc.want)
		}
	}
}

func TestLoadYAMLEmpty(t *testing.T) {
	resolver, err := loadYAML(strings.NewReader(""))
	if err != nil {
		t.Fatalf("loadYAML failed on empty input: %v", err)
	}

	got, err := resolver.Resolve(nil, nil, &kong.Flag{
		Value: &kong.Value{Name: "log-level"},
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if got != nil {
		t.Errorf("Resolve on empty config = %v, want nil", got)
	}
}

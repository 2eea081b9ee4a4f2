package syncid

import (
	"strings"
	"testing"
)

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{name: "generated form", id: "ABCD-2345", want: true},
		{name: "minimum length", id: "AB12", want: true},
		{name: "user-chosen long id", id: "FAMILY-TRIP-2025", want: true},
		{name: "too short", id: "AB1", want: false},
		{name: "lowercase rejected", id: "abcd-1234", want: false},
		{name: "spaces rejected", id: "ABCD 1234", want: false},
		{name: "empty", id: "", want: false},
		{name: "underscore rejected", id: "ABCD_1234", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Valid(tt.id); got != tt.want {
				t.Errorf("Valid(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 50; i++ {
		id, err := Generate()
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}

		if !Valid(id) {
			t.Errorf("Generate() produced invalid id %q", id)
		}
		if len(id) != 9 || id[4] != '-' {
			t.Errorf("Generate() unexpected shape %q", id)
		}
		for _, c := range strings.ReplaceAll(id, "-", "") {
			if !strings.ContainsRune(alphabet, c) {
				t.Errorf("Generate() used character %q outside alphabet", c)
			}
		}

		if seen[id] {
			t.Errorf("Generate() repeated id %q", id)
		}
		seen[id] = true
	}
}

package httpserver

import (
	"net/url"
	"testing"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantSkip  int
		wantLimit int
		wantErr   bool
	}{
		{"defaults", "", 0, 10, false},
		{"both set", "skip=5&limit=3", 5, 3, false},
		{"skip only", "skip=2", 2, 10, false},
		{"limit only", "limit=50", 0, 50, false},
		{"zero limit", "limit=0", 0, 0, false},
		{"trimmed", "skip=+1+&limit=+2+", 1, 2, false},
		{"negative skip", "skip=-1", 0, 0, true},
		{"negative limit", "limit=-5", 0, 0, true},
		{"non-numeric skip", "skip=abc", 0, 0, true},
		{"non-numeric limit", "limit=ten", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			skip, limit, err := parsePagination(values)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.query)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if skip != tt.wantSkip || limit != tt.wantLimit {
				t.Fatalf("parsePagination(%q) = (%d, %d), want (%d, %d)", tt.query, skip, limit, tt.wantSkip, tt.wantLimit)
			}
		})
	}
}

func TestNormalizeStringPtr(t *testing.T) {
	if normalizeStringPtr(nil) != nil {
		t.Fatalf("nil should stay nil")
	}
	empty := "   "
	if normalizeStringPtr(&empty) != nil {
		t.Fatalf("blank string should normalize to nil")
	}
	val := " keep "
	got := normalizeStringPtr(&val)
	if got == nil || *got != "keep" {
		t.Fatalf("normalizeStringPtr = %v, want keep", got)
	}
}

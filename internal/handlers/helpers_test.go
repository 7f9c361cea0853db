package handlers

import (
	"errors"
	"testing"
)

func TestParseResourceID(t *testing.T) {
	tests := []struct {
		raw     string
		want    uint64
		wantErr error
	}{
		{"1", 1, nil},
		{"42", 42, nil},
		{"18446744073709551615", 18446744073709551615, nil},
		{"abc", 0, errIDRouteMiss},
		{"0", 0, errIDRouteMiss},
		{"-1", 0, errIDRouteMiss},
		{"007", 0, errIDRouteMiss},
		{"1.5", 0, errIDRouteMiss},
		{"1x", 0, errIDRouteMiss},
		{"", 0, errIDRouteMiss},
		{"999999999999999999999", 0, errIDOutOfRange},
		{"18446744073709551616", 0, errIDOutOfRange},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := parseResourceID(tc.raw)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("parseResourceID(%q) error = %v, want %v", tc.raw, err, tc.wantErr)
			}
			if got != tc.want {
				t.Fatalf("parseResourceID(%q) = %d, want %d", tc.raw, got, tc.want)
			}
		})
	}
}

func TestNormalizeRecipients(t *testing.T) {
	got := normalizeRecipients([]string{" a@test.com ", "b@test.com", "a@test.com", "", "  "})
	if len(got) != 2 || got[0] != "a@test.com" || got[1] != "b@test.com" {
		t.Fatalf("unexpected result %v", got)
	}
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import "testing"

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short string unchanged", "hello", 10, "hello"},
		{"exact length unchanged", "hello", 5, "hello"},
		{"truncated with ellipsis", "hello world", 8, "hello..."},
		{"zero max", "hello", 0, ""},
		{"tiny max without ellipsis", "hello", 2, "he"},
		{"multibyte not split", "héllo wörld", 8, "héllo..."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TruncateRunes(tc.in, tc.max); got != tc.want {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
			}
		})
	}
}

func TestTruncateWidth_CJK(t *testing.T) {
	// Each CJK rune occupies two columns.
	got := TruncateWidth("日本語テスト", 7)
	if StringWidth(got) > 7 {
		t.Errorf("TruncateWidth produced width %d, want <= 7", StringWidth(got))
	}
}

func TestIsBlank(t *testing.T) {
	if !IsBlank("") || !IsBlank("  \t\n") {
		t.Error("expected blank for empty and whitespace strings")
	}
	if IsBlank(" x ") {
		t.Error("expected non-blank for ' x '")
	}
}

func TestInOpenRange(t *testing.T) {
	tests := []struct {
		v, lo, hi float64
		want      bool
	}{
		{300, 250, 600, true},
		{250, 250, 600, false},
		{600, 250, 600, false},
		{249.9, 250, 600, false},
		{15.1, 15, 90, true},
	}
	for _, tc := range tests {
		if got := InOpenRange(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Errorf("InOpenRange(%v, %v, %v) = %v, want %v", tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
}

func TestFirstLine(t *testing.T) {
	if got := FirstLine("  title \nrest"); got != "title" {
		t.Errorf("FirstLine = %q, want %q", got, "title")
	}
}

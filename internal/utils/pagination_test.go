package utils

import "testing"

func TestAtoiDefault(t *testing.T) {
	cases := []struct {
		in   string
		def  int
		want int
	}{
		{"", 7, 7},
		{"42", 7, 42},
		{"-3", 7, -3},
		{"abc", 7, 7},
		{"4.5", 7, 7},
	}
	for _, tc := range cases {
		if got := AtoiDefault(tc.in, tc.def); got != tc.want {
			t.Errorf("AtoiDefault(%q, %d) = %d, want %d", tc.in, tc.def, got, tc.want)
		}
	}
}

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		offset, limit         int
		wantOffset, wantLimit int
	}{
		{0, 10, 0, 10},
		{-5, 10, 0, 10},
		{3, 0, 3, DefaultPageLimit},
		{3, -1, 3, DefaultPageLimit},
		{100000, 25, 100000, 25},
	}
	for _, tc := range cases {
		off, lim := NormalizePage(tc.offset, tc.limit)
		if off != tc.wantOffset || lim != tc.wantLimit {
			t.Errorf("NormalizePage(%d, %d) = (%d, %d), want (%d, %d)",
				tc.offset, tc.limit, off, lim, tc.wantOffset, tc.wantLimit)
		}
	}
}

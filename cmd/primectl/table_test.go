package main

import "testing"

func TestIsqrt(t *testing.T) {
	cases := []struct {
		n, want uint64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 2},
		{8, 2},
		{9, 3},
		{99, 9},
		{100, 10},
		{7919 * 7919, 7919},
		{7919*7919 - 1, 7918},
		{1 << 32, 1 << 16},
		{(1 << 32) - 1, (1 << 16) - 1},
	}
	for _, tc := range cases {
		if got := isqrt(tc.n); got != tc.want {
			t.Errorf("isqrt(%d): got %d, want %d", tc.n, got, tc.want)
		}
	}
}

package fuzzy

import (
	"fmt"
	"testing"
)

func TestDistance(t *testing.T) {
	testCases := []struct {
		a        string
		b        string
		expected uint8
	}{
		{"", "", 0},
		{"a", "", 1},
		{"", "a", 1},
		{"", "hello", 5},
		{"hello", "hello", 0},
		{"hello", "hallo", 1},
		{"helo", "hello", 1},
		{"hello", "helo", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		// strongly asymmetric lengths, both argument orders
		{"kot", "kotłownia", 6},
		{"kotłownia", "kot", 6},
		{"a", "niebezpieczeństwo", 17},
		{"book", "back", 2},
		{"book", "books", 1},
		// case folds to equal, including Polish diacritics
		{"Hello", "hello", 0},
		{"DZIEŃ", "dzień", 0},
		{"Żółw", "żółw", 0},
		// a diacritic is a real substitution against its base letter
		{"dzien", "dzień", 1},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s→%s", tc.a, tc.b), func(t *testing.T) {
			dist := Distance([]rune(tc.a), []rune(tc.b))
			if dist != tc.expected {
				t.Errorf("expected distance %d, got %d", tc.expected, dist)
			}
		})
	}
}

func TestDistanceMetricProperties(t *testing.T) {
	words := []string{"", "a", "dzień", "dziecko", "dzisiaj", "kot", "kota"}

	for _, a := range words {
		ra := []rune(a)
		if d := Distance(ra, ra); d != 0 {
			t.Errorf("Distance(%q, %q) = %d, want 0", a, a, d)
		}
		for _, b := range words {
			rb := []rune(b)
			ab := Distance(ra, rb)
			ba := Distance(rb, ra)
			if ab != ba {
				t.Errorf("Distance(%q, %q) = %d but reversed = %d", a, b, ab, ba)
			}
			for _, c := range words {
				rc := []rune(c)
				if int(ab) > int(Distance(ra, rc))+int(Distance(rc, rb)) {
					t.Errorf("triangle inequality violated for %q, %q via %q", a, b, c)
				}
			}
		}
	}
}

func BenchmarkDistance(b *testing.B) {
	x := []rune("niebezpieczeństwo")
	y := []rune("niebespieczenstwo")
	for i := 0; i < b.N; i++ {
		Distance(x, y)
	}
}

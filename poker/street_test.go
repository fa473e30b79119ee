package poker

import "testing"

func TestStreetFromIndex(t *testing.T) {
	for i, want := range StreetOrder() {
		got, ok := StreetFromIndex(i)
		if !ok || got != want {
			t.Fatalf("StreetFromIndex(%d) = %v, %v, want %v", i, got, ok, want)
		}
	}
	for _, i := range []int{-1, 4, 100} {
		if _, ok := StreetFromIndex(i); ok {
			t.Fatalf("StreetFromIndex(%d) expected failure", i)
		}
	}
}

func TestStreetFromBoardCount(t *testing.T) {
	cases := []struct {
		n    int
		want Street
	}{
		{0, Preflop},
		{3, Flop},
		{4, Turn},
		{5, River},
	}
	for _, c := range cases {
		got, ok := StreetFromBoardCount(c.n)
		if !ok || got != c.want {
			t.Fatalf("StreetFromBoardCount(%d) = %v, %v, want %v", c.n, got, ok, c.want)
		}
	}
	for _, n := range []int{1, 2, 6} {
		if _, ok := StreetFromBoardCount(n); ok {
			t.Fatalf("StreetFromBoardCount(%d) expected failure", n)
		}
	}
}

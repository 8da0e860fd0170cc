package pager

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct {
		name        string
		page, total int
		want        int
	}{
		{"in range", 3, 10, 3},
		{"below range", 0, 10, 1},
		{"negative", -5, 10, 1},
		{"above range", 11, 10, 10},
		{"first page", 1, 10, 1},
		{"last page", 10, 10, 10},
		{"single page doc", 7, 1, 1},
		{"zero total", 5, 0, 1},
		{"negative total", 5, -3, 1},
	}
	for _, tc := range cases {
		if got := Clamp(tc.page, tc.total); got != tc.want {
			t.Errorf("%s: Clamp(%d, %d) = %d, want %d", tc.name, tc.page, tc.total, got, tc.want)
		}
	}
}

func TestAdvanceRetreatSaturate(t *testing.T) {
	if got := Advance(10, 10); got != 10 {
		t.Errorf("Advance at last page = %d, want 10", got)
	}
	if got := Advance(3, 10); got != 4 {
		t.Errorf("Advance(3, 10) = %d, want 4", got)
	}
	if got := Retreat(1, 10); got != 1 {
		t.Errorf("Retreat at first page = %d, want 1", got)
	}
	if got := Retreat(3, 10); got != 2 {
		t.Errorf("Retreat(3, 10) = %d, want 2", got)
	}
}

// Any sequence of moves must keep the page inside [1, total].
func TestMoveSequenceStaysInBounds(t *testing.T) {
	const total = 5
	page := Clamp(3, total)
	moves := []func(int, int) int{
		Advance, Advance, Advance, Advance, Advance, Advance,
		Retreat, Retreat, Retreat, Retreat, Retreat, Retreat, Retreat,
		Advance, Retreat, Advance,
	}
	for i, move := range moves {
		page = move(page, total)
		if page < 1 || page > total {
			t.Fatalf("after move %d: page %d out of [1, %d]", i, page, total)
		}
	}
}

package domain

import "testing"

func TestNewGrid(t *testing.T) {
	g := NewGrid("\n@\n|\nA\n|\nx\n")

	if g.Rows() != 7 {
		t.Fatalf("Rows() = %d, want 7", g.Rows())
	}
	if len(g[0]) != 0 || len(g[6]) != 0 {
		t.Errorf("expected empty first and last rows, got %q and %q", string(g[0]), string(g[6]))
	}
	if string(g[1]) != "@" {
		t.Errorf("row 1 = %q, want %q", string(g[1]), "@")
	}
}

func TestGrid_At(t *testing.T) {
	g := NewGrid("@--\n|\n+-x")

	tests := []struct {
		name   string
		pos    Position
		want   rune
		wantOK bool
	}{
		{"origin", Position{0, 0}, '@', true},
		{"inside row", Position{0, 2}, '-', true},
		{"ragged row overflow", Position{1, 1}, 0, false},
		{"negative row", Position{-1, 0}, 0, false},
		{"negative col", Position{0, -1}, 0, false},
		{"past last row", Position{3, 0}, 0, false},
		{"last cell", Position{2, 2}, 'x', true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.At(tt.pos)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("At(%v) = (%q, %v), want (%q, %v)", tt.pos, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestGrid_Width(t *testing.T) {
	if w := NewGrid("ab\nabcd\n").Width(); w != 4 {
		t.Errorf("Width() = %d, want 4", w)
	}
}

func TestIsTraversable(t *testing.T) {
	for _, r := range "@-|+xABXZ" {
		if !IsTraversable(r) {
			t.Errorf("IsTraversable(%q) = false, want true", r)
		}
	}
	for _, r := range " a.y#z\t*" {
		if IsTraversable(r) {
			t.Errorf("IsTraversable(%q) = true, want false", r)
		}
	}
}

func TestIsWaypoint(t *testing.T) {
	if IsWaypoint('x') {
		t.Error("end marker must not count as a waypoint")
	}
	if !IsWaypoint('K') {
		t.Error("uppercase letters are waypoints")
	}
}

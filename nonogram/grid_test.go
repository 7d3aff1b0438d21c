package nonogram

import "testing"

func TestNewGridAllUnknown(t *testing.T) {
	g := NewGrid(3, 2)
	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("wrong dimensions: %dx%d", g.Width(), g.Height())
	}
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			if g.At(r, c).Status() != Unknown {
				t.Fatalf("cell (%d,%d) not UNKNOWN", r, c)
			}
			if g.At(r, c).Row != r || g.At(r, c).Col != c {
				t.Fatalf("cell (%d,%d) has wrong coordinates: %+v", r, c, g.At(r, c))
			}
		}
	}
}

func TestGridCloneIndependence(t *testing.T) {
	g := NewGrid(2, 2)
	cp := g.Clone()
	if _, err := cp.At(0, 0).SetStatus(Filled); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.At(0, 0).Status() != Unknown {
		t.Fatal("mutating the clone leaked into the original grid")
	}
}

func TestGridStatuses(t *testing.T) {
	g := NewGrid(2, 1)
	if _, err := g.At(0, 1).SetStatus(Filled); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := g.Statuses()
	want := [][]Status{{Unknown, Filled}}
	if len(got) != 1 || len(got[0]) != 2 || got[0][0] != want[0][0] || got[0][1] != want[0][1] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

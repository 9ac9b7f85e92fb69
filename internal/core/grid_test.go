package core

import (
	"slices"
	"testing"

	"github.com/pkg/errors"
)

func TestGridFromRows(t *testing.T) {
	g, err := GridFromRows([][]uint8{
		{0, 1, 0},
		{1, 1, 0},
	})
	if err != nil {
		t.Fatalf("GridFromRows: %v", err)
	}
	if g.Rows() != 2 || g.Cols() != 3 {
		t.Fatalf("size = %dx%d, want 2x3", g.Rows(), g.Cols())
	}
	if !slices.Equal(g.Cells(), []uint8{0, 1, 0, 1, 1, 0}) {
		t.Fatalf("cells = %v, not row-major", g.Cells())
	}
	if g.Population() != 3 {
		t.Fatalf("population = %d, want 3", g.Population())
	}
}

func TestGridFromRowsRejectsMalformed(t *testing.T) {
	cases := map[string][][]uint8{
		"empty":      nil,
		"empty row":  {{}},
		"ragged":     {{0, 1}, {1}},
		"non-binary": {{0, 2}},
	}
	for name, rows := range cases {
		if _, err := GridFromRows(rows); !errors.Is(err, ErrInvalidGrid) {
			t.Fatalf("%s: err = %v, want ErrInvalidGrid", name, err)
		}
	}
}

func TestGridOutOfBoundsReadsDead(t *testing.T) {
	g := NewGrid(2, 2)
	for i := range g.Cells() {
		g.Cells()[i] = Alive
	}
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if g.Alive(rc[0], rc[1]) {
			t.Fatalf("(%d,%d) outside the grid read as alive", rc[0], rc[1])
		}
	}
	g.Set(5, 5, Alive)
	if g.Population() != 4 {
		t.Fatal("out-of-bounds Set changed the grid")
	}
}

func TestGridCloneAndEqual(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, Alive)
	c := g.Clone()
	if !c.Equal(g) || c.Hash() != g.Hash() {
		t.Fatal("clone differs from original")
	}
	c.Set(0, 0, Alive)
	if g.Alive(0, 0) {
		t.Fatal("clone shares storage with original")
	}
	if c.Equal(g) || c.Hash() == g.Hash() {
		t.Fatal("modified clone still equal to original")
	}
	if g.Equal(NewGrid(3, 4)) {
		t.Fatal("grids of different sizes compare equal")
	}
}

func TestGridValidate(t *testing.T) {
	var nilGrid *Grid
	if err := nilGrid.Validate(); !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("nil grid err = %v", err)
	}
	if err := (&Grid{rows: 2, cols: 2, data: make([]uint8, 3)}).Validate(); !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("short grid err = %v", err)
	}
	if err := NewGrid(4, 4).Validate(); err != nil {
		t.Fatalf("fresh grid err = %v", err)
	}
}

func TestFillThreshold(t *testing.T) {
	buf := make([]uint8, 1000)
	FillThreshold(NewRNG(7), buf, 0.7)
	other := make([]uint8, 1000)
	FillThreshold(NewRNG(7), other, 0.7)
	if !slices.Equal(buf, other) {
		t.Fatal("same seed produced different fills")
	}
	for _, v := range buf {
		if v != Dead && v != Alive {
			t.Fatalf("fill wrote %d", v)
		}
	}
	FillThreshold(NewRNG(7), buf, 1)
	if slices.Contains(buf, Alive) {
		t.Fatal("threshold 1 must leave every cell dead")
	}
}

func TestSeederRegistry(t *testing.T) {
	RegisterSeeder("", func(*RNG, Size) *Grid { return nil })
	RegisterSeeder("nil", nil)
	if _, ok := Seeders()[""]; ok {
		t.Fatal("empty name registered")
	}
	if _, ok := Seeders()["nil"]; ok {
		t.Fatal("nil seeder registered")
	}
	RegisterSeeder("full", func(_ *RNG, s Size) *Grid {
		g := NewGrid(s.Rows, s.Cols)
		for i := range g.Cells() {
			g.Cells()[i] = Alive
		}
		return g
	})
	defer delete(seeders, "full")
	g := Seeders()["full"](nil, Size{Rows: 2, Cols: 3})
	if g.Population() != 6 {
		t.Fatalf("population = %d, want 6", g.Population())
	}
}

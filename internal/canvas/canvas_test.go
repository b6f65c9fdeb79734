package canvas

import (
	"testing"
	"testing/quick"
)

func TestNewRoundsToCells(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"exact", 4, 8, 4, 8},
		{"odd width", 3, 4, 4, 4},
		{"short height", 2, 5, 2, 8},
		{"zero", 0, 0, 2, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := New(tt.width, tt.height).Size()
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Size() = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestSingleDots(t *testing.T) {
	tests := []struct {
		p    Point
		want rune
	}{
		{Point{0, 0}, '⠁'},
		{Point{0, 1}, '⠂'},
		{Point{0, 2}, '⠄'},
		{Point{0, 3}, '⡀'},
		{Point{1, 0}, '⠈'},
		{Point{1, 1}, '⠐'},
		{Point{1, 2}, '⠠'},
		{Point{1, 3}, '⢀'},
	}

	for _, tt := range tests {
		c := New(2, 4)
		c.Set(tt.p)
		if got := []rune(c.String())[0]; got != tt.want {
			t.Errorf("Set(%v): got %U, want %U", tt.p, got, tt.want)
		}
	}
}

func TestSetOutOfBoundsIgnored(t *testing.T) {
	c := New(2, 4)
	c.Set(Point{-1, 0})
	c.Set(Point{2, 0})
	c.Set(Point{0, 4})
	if got := c.String(); got != "\u2800" {
		t.Errorf("String() = %q, want blank cell", got)
	}
}

func TestResetClearsDots(t *testing.T) {
	c := New(4, 4)
	c.Set(Point{3, 3})
	if !c.IsSet(Point{3, 3}) {
		t.Fatal("dot should be raised")
	}
	c.Reset()
	if c.IsSet(Point{3, 3}) {
		t.Error("dot should be lowered after Reset")
	}
}

func TestTrailFrameCount(t *testing.T) {
	path := []Point{{1, 0}, {2, 0}, {3, 1}, {3, 2}, {2, 3}, {1, 3}, {0, 2}, {0, 1}}
	frames := Trail(4, 4, path, 4)
	if len(frames) != len(path) {
		t.Fatalf("got %d frames, want %d", len(frames), len(path))
	}
	for i, f := range frames {
		if n := len([]rune(f)); n != 2 {
			t.Errorf("frame %d is %d cells wide, want 2", i, n)
		}
	}
	if Trail(4, 4, nil, 4) != nil {
		t.Error("empty path should produce no frames")
	}
}

// TestCellsRenderWidth checks that every rendered row has exactly one rune
// per braille column, whatever dots are raised.
func TestCellsRenderWidth(t *testing.T) {
	property := func(w, h uint8, xs, ys []uint8) bool {
		c := New(int(w%32), int(h%32))
		for i := range min(len(xs), len(ys)) {
			c.Set(Point{int(xs[i]), int(ys[i])})
		}
		cols, rows := c.Cells()
		lines := 1
		for _, r := range c.String() {
			if r == '\n' {
				lines++
			}
		}
		return lines == rows && len([]rune(c.String())) == cols*rows+rows-1
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

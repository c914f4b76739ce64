package watermark

import (
	"image/color"
	"math"
	"testing"

	"github.com/fogleman/gg"
)

type point struct{ x, y float64 }

// recordOrigins returns a print func that records each tile origin in
// canvas coordinates.
func recordOrigins(origins *[]point) PrintFunc {
	return func(dc *gg.Context, _ Config) {
		x, y := dc.TransformPoint(0, 0)
		*origins = append(*origins, point{math.Round(x), math.Round(y)})
	}
}

func expectedTiles(w, h, sx, sy, ax, ay float64) int {
	cols := math.Max(0, math.Ceil((w+ax-sx)/ax))
	rows := math.Max(0, math.Ceil((h+ay-sy)/ay))
	return int(cols * rows)
}

func TestPaintGridTileCountIncludesEdgeBleed(t *testing.T) {
	cases := []struct {
		name           string
		w, h           int
		sx, sy, ax, ay float64
	}{
		{name: "exact multiples", w: 400, h: 300, ax: 200, ay: 150},
		{name: "defaults", w: 1000, h: 800, sx: 20, sy: 50, ax: 260, ay: 150},
		{name: "smaller than one tile", w: 10, h: 10, ax: 260, ay: 150},
		{name: "start past the edge", w: 100, h: 100, sx: 500, ax: 50, ay: 50},
		{name: "negative start", w: 300, h: 200, sx: -40, sy: -40, ax: 70, ay: 90},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			cfg := Config{
				Width: tc.w, Height: tc.h,
				StartX: tc.sx, StartY: tc.sy,
				AxisX: tc.ax, AxisY: tc.ay,
				Print: func(*gg.Context, Config) { calls++ },
			}

			dc := gg.NewContext(tc.w, tc.h)
			got := paintGrid(dc, cfg, tileAssets{fore: color.Black})

			want := expectedTiles(float64(tc.w), float64(tc.h), tc.sx, tc.sy, tc.ax, tc.ay)
			if got != want || calls != want {
				t.Fatalf("tiles = %d (calls %d), want %d", got, calls, want)
			}
		})
	}
}

func TestPaintGridOrigins(t *testing.T) {
	var origins []point
	cfg := Config{
		Width: 400, Height: 300,
		AxisX: 200, AxisY: 150,
		Print: recordOrigins(&origins),
	}

	paintGrid(gg.NewContext(400, 300), cfg, tileAssets{fore: color.Black})

	want := []point{
		{0, 0}, {0, 150}, {0, 300},
		{200, 0}, {200, 150}, {200, 300},
		{400, 0}, {400, 150}, {400, 300},
	}
	if len(origins) != len(want) {
		t.Fatalf("origins = %v, want %v", origins, want)
	}
	for i := range want {
		if origins[i] != want[i] {
			t.Fatalf("origin %d = %v, want %v", i, origins[i], want[i])
		}
	}

	var visible []point
	for _, p := range origins {
		if p.x < 400 && p.y < 300 {
			visible = append(visible, p)
		}
	}
	if len(visible) != 4 {
		t.Fatalf("visible origins = %v, want the 4 tiles inside the surface", visible)
	}
}

func TestPaintGridRotatesEachTileIndependently(t *testing.T) {
	var ends []point
	cfg := Config{
		Width: 100, Height: 100,
		StartX: 10, StartY: 10,
		AxisX: 100, AxisY: 100,
		Rotate: 90,
		Print: func(dc *gg.Context, _ Config) {
			x, y := dc.TransformPoint(10, 0)
			ends = append(ends, point{math.Round(x), math.Round(y)})
		},
	}

	paintGrid(gg.NewContext(100, 100), cfg, tileAssets{fore: color.Black})

	// Rotating by 90 degrees maps the tile's +x axis onto the canvas +y axis.
	want := []point{{10, 20}, {10, 120}, {110, 20}, {110, 120}}
	for i := range want {
		if ends[i] != want[i] {
			t.Fatalf("tile %d end = %v, want %v", i, ends[i], want[i])
		}
	}
}

func TestValidSpacing(t *testing.T) {
	if validSpacing(Config{AxisX: 0, AxisY: 10}) || validSpacing(Config{AxisX: 10, AxisY: -1}) {
		t.Fatalf("non-positive spacing accepted")
	}
	if !validSpacing(Config{AxisX: 1, AxisY: 1}) {
		t.Fatalf("positive spacing rejected")
	}
}

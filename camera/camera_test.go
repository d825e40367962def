package camera

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	cam := New(1600, 1200, 800, 600)

	if cam.ViewportW != 1600 || cam.ViewportH != 1200 {
		t.Errorf("expected viewport (1600, 1200), got (%f, %f)", cam.ViewportW, cam.ViewportH)
	}
	if cam.WorldW != 800 || cam.WorldH != 600 {
		t.Errorf("expected world (800, 600), got (%f, %f)", cam.WorldW, cam.WorldH)
	}
}

func TestScreenToWorldRescale(t *testing.T) {
	tests := []struct {
		name         string
		vw, vh       float32
		sx, sy       float32
		wantX, wantY float32
	}{
		{"window matches frame, center", 800, 600, 400, 300, 0, 0},
		{"window matches frame, corner", 800, 600, 0, 0, -400, -300},
		{"double size window", 1600, 1200, 1600, 1200, 400, 300},
		{"half size window", 400, 300, 100, 75, -200, -150},
		{"wide window", 1600, 600, 800, 450, 0, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := New(tt.vw, tt.vh, 800, 600)
			wx, wy := cam.ScreenToWorld(tt.sx, tt.sy)
			if math.Abs(float64(wx-tt.wantX)) > 0.001 || math.Abs(float64(wy-tt.wantY)) > 0.001 {
				t.Errorf("ScreenToWorld(%v, %v) = (%v, %v), want (%v, %v)",
					tt.sx, tt.sy, wx, wy, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, 800, 600)

	// Test roundtrip at various positions
	testCases := []struct{ sx, sy float32 }{
		{640, 360},  // center
		{100, 100},  // top-left
		{1200, 600}, // near bottom-right
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if math.Abs(float64(sx-tc.sx)) > 0.01 || math.Abs(float64(sy-tc.sy)) > 0.01 {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestScreenDeltaToWorld(t *testing.T) {
	cam := New(1600, 300, 800, 600)
	dx, dy := cam.ScreenDeltaToWorld(10, 10)
	if dx != 5 || dy != 20 {
		t.Errorf("expected delta (5, 20), got (%f, %f)", dx, dy)
	}
}

func TestResizeIgnoresEmptyWindow(t *testing.T) {
	cam := New(800, 600, 800, 600)
	cam.Resize(0, 0)

	if cam.ViewportW != 800 || cam.ViewportH != 600 {
		t.Errorf("expected viewport unchanged, got (%f, %f)", cam.ViewportW, cam.ViewportH)
	}

	cam.Resize(1024, 768)
	wx, wy := cam.ScreenToWorld(512, 384)
	if math.Abs(float64(wx)) > 0.001 || math.Abs(float64(wy)) > 0.001 {
		t.Errorf("expected window center to map to origin after resize, got (%f, %f)", wx, wy)
	}
}

func TestPixelsPerUnit(t *testing.T) {
	cam := New(1600, 600, 800, 600)
	if got := cam.PixelsPerUnit(); got != 1 {
		t.Errorf("expected 1 pixel per unit (limited by height), got %f", got)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1280, 720, 800, 600)

	if !cam.IsVisible(0, 0, 3) {
		t.Error("expected origin to be visible")
	}
	if !cam.IsVisible(401, 0, 3) {
		t.Error("expected circle overlapping the edge to be visible")
	}
	if cam.IsVisible(500, 0, 3) {
		t.Error("expected point outside the frame to be culled")
	}
}

package obj

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestCameraSetupViewport(t *testing.T) {
	cases := []struct {
		name         string
		screenW      int
		screenH      int
		wantW, wantH float64
		wantZoom     float64
	}{
		{"landscape_800x600", 800, 600, 40.0 / 3.0, 10, 3.75},
		{"square", 640, 640, 10, 10, 4},
		{"portrait", 600, 800, 10, 40.0 / 3.0, 3.75},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cam := NewCamera(c.screenW, c.screenH, 10, 10)
			w, h := cam.ViewportSize()
			if !near(w, c.wantW) || !near(h, c.wantH) {
				t.Fatalf("viewport = %.4fx%.4f, want %.4fx%.4f", w, h, c.wantW, c.wantH)
			}
			if !near(cam.Zoom(), c.wantZoom) {
				t.Fatalf("zoom = %.4f, want %.4f", cam.Zoom(), c.wantZoom)
			}
		})
	}
}

func TestCameraSetupViewportIgnoresEmptyWindow(t *testing.T) {
	cam := NewCamera(800, 600, 10, 10)
	cam.SetupViewport(0, 0)
	if w, h := cam.ScreenSize(); w != 800 || h != 600 {
		t.Fatalf("screen size = %dx%d, want 800x600", w, h)
	}
}

func TestCameraClampsToWorld(t *testing.T) {
	// 640x640 window at zoom 4 shows 160x160 world pixels.
	cam := NewCamera(640, 640, 10, 10)
	cam.SetWorldBounds(640, 320)

	cases := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"inside", 300, 160, 300, 160},
		{"top_left_corner", 0, 0, 80, 80},
		{"bottom_right_corner", 1000, 1000, 560, 240},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cam.Update(c.x, c.y)
			if !near(cam.PosX, c.wantX) || !near(cam.PosY, c.wantY) {
				t.Fatalf("pos = (%.2f, %.2f), want (%.2f, %.2f)", cam.PosX, cam.PosY, c.wantX, c.wantY)
			}
		})
	}
}

func TestCameraCentersSmallWorld(t *testing.T) {
	cam := NewCamera(640, 640, 10, 10)
	cam.SetWorldBounds(100, 60)
	cam.Update(0, 0)
	if !near(cam.PosX, 50) || !near(cam.PosY, 30) {
		t.Fatalf("pos = (%.2f, %.2f), want world center", cam.PosX, cam.PosY)
	}

	left, top := cam.ViewTopLeft()
	if !near(left, -30) || !near(top, -50) {
		t.Fatalf("ViewTopLeft = (%.2f, %.2f), want (-30, -50)", left, top)
	}
	if x, y := cam.WorldToScreen(50, 30); !near(x, 320) || !near(y, 320) {
		t.Fatalf("WorldToScreen(center) = (%.2f, %.2f), want (320, 320)", x, y)
	}
}

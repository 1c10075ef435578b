package component

import "testing"

func TestKeyFrameIndex(t *testing.T) {
	looping := NewAnimationRow(nil, 16, 16, 0, 4, 0.25, true)
	once := NewAnimationRow(nil, 16, 16, 0, 4, 0.25, false)

	cases := []struct {
		name string
		anim *Animation
		t    float64
		want int
	}{
		{"loop_start", looping, 0, 0},
		{"loop_mid_first", looping, 0.2, 0},
		{"loop_second", looping, 0.25, 1},
		{"loop_last", looping, 0.99, 3},
		{"loop_wraps", looping, 1.0, 0},
		{"loop_wraps_twice", looping, 2.6, 2},
		{"once_clamps", once, 10, 3},
		{"negative_time", looping, -1, 0},
		{"nil_clip", nil, 3, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.anim.KeyFrameIndex(c.t); got != c.want {
				t.Fatalf("KeyFrameIndex(%v) = %d, want %d", c.t, got, c.want)
			}
		})
	}
}

func TestAnimationWithoutSheet(t *testing.T) {
	a := NewAnimationRow(nil, 16, 16, 2, 4, 0.25, true)
	if a.KeyFrame(0.5) != nil {
		t.Fatalf("expected no image without a sheet")
	}
	if a.Duration() != 1.0 {
		t.Fatalf("expected 1s clip, got %v", a.Duration())
	}
	if w, h := a.Size(); w != 16 || h != 16 {
		t.Fatalf("unexpected size %dx%d", w, h)
	}
}

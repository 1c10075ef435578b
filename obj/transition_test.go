package obj

import "testing"

func TestTransitionFade(t *testing.T) {
	tr := NewTransition(4)
	if tr.Alpha() != 0 {
		t.Fatalf("idle alpha = %v, want 0", tr.Alpha())
	}

	tr.Start(Town)
	want := []float64{1, 0.75, 0.5, 0.25}
	for i, w := range want {
		if !tr.Active {
			t.Fatalf("tick %d: fade ended early", i)
		}
		if !near(tr.Alpha(), w) {
			t.Fatalf("tick %d: alpha = %v, want %v", i, tr.Alpha(), w)
		}
		tr.Update()
	}
	if tr.Active || tr.Alpha() != 0 || tr.Target != "" {
		t.Fatalf("fade should be finished: %+v", tr)
	}
}

func TestTransitionRestart(t *testing.T) {
	tr := NewTransition(0)
	if tr.Duration != 1 {
		t.Fatalf("Duration = %d, want clamp to 1", tr.Duration)
	}

	tr = NewTransition(10)
	tr.Start(Town)
	tr.Update()
	tr.Update()
	tr.Start(CastleOfDoom)
	if tr.Frames != 0 || tr.Target != CastleOfDoom || tr.Alpha() != 1 {
		t.Fatalf("restart should fade from black toward %s: %+v", CastleOfDoom, tr)
	}
}

package experiment

import "testing"

func TestLinearDecay(t *testing.T) {
	schedule, err := NewLinearDecay(100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		step  int
		alpha float64
	}{
		{0, 1.0},
		{25, 0.75},
		{50, 0.5},
		{100, 0.0},
		{150, 0.0}, // clipped past the end of training
	}

	for _, test := range tests {
		if got := schedule.Alpha(test.step); got != test.alpha {
			t.Errorf("alpha(%d) = %v, expected %v", test.step, got,
				test.alpha)
		}
	}
}

func TestLinearDecayValidation(t *testing.T) {
	for _, total := range []int{0, -10} {
		if _, err := NewLinearDecay(total); err == nil {
			t.Errorf("total %d: expected an error", total)
		}
	}
}

func TestConstantSchedule(t *testing.T) {
	schedule, err := NewConstant(0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := schedule.Alpha(12345); got != 0.1 {
		t.Errorf("alpha = %v, expected 0.1", got)
	}

	for _, alpha := range []float64{-0.5, 1.5} {
		if _, err := NewConstant(alpha); err == nil {
			t.Errorf("alpha %v: expected an error", alpha)
		}
	}
}

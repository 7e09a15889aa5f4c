package program

import (
	"math"
	"testing"
)

func TestProgramsPerStudent(t *testing.T) {
	// Flat bands
	if got := ProgramsPerStudent(12000, 500); got != 1250 {
		t.Errorf("economy programs = %f, want 1250", got)
	}
	if got := ProgramsPerStudent(22000, 10); got != 2500 {
		t.Errorf("value programs = %f, want 2500", got)
	}

	// Standard/premium piecewise: 12,000 at <= 50; at 75 students
	// 12,000 - 3,500*(75-50)/50 = 12,000 - 1,750 = 10,250; 8,500 at >= 100
	if got := ProgramsPerStudent(40000, 50); got != 12000 {
		t.Errorf("programs at 50 = %f, want 12000", got)
	}
	if got := ProgramsPerStudent(40000, 75); math.Abs(got-10250) > 1e-9 {
		t.Errorf("programs at 75 = %f, want 10250", got)
	}
	if got := ProgramsPerStudent(40000, 100); got != 8500 {
		t.Errorf("programs at 100 = %f, want 8500", got)
	}
	if got := ProgramsPerStudent(40000, 250); got != 8500 {
		t.Errorf("programs at 250 = %f, want flat 8500", got)
	}
}

func TestMiscPerStudent(t *testing.T) {
	// Economy is flat 1,500 regardless of scale (explicit exception).
	if got := MiscPerStudent(12000, 10); got != 1500 {
		t.Errorf("economy misc at 10 = %f, want 1500", got)
	}
	if got := MiscPerStudent(12000, 75); got != 1500 {
		t.Errorf("economy misc at 75 = %f, want 1500", got)
	}

	// Everyone else: 3,500 at <= 50 declining to 1,500 by 100.
	// At 75: 3,500 - 2,000*(75-50)/50 = 2,500
	if got := MiscPerStudent(40000, 40); got != 3500 {
		t.Errorf("misc at 40 = %f, want 3500", got)
	}
	if got := MiscPerStudent(40000, 75); math.Abs(got-2500) > 1e-9 {
		t.Errorf("misc at 75 = %f, want 2500", got)
	}
	if got := MiscPerStudent(40000, 150); got != 1500 {
		t.Errorf("misc at 150 = %f, want 1500", got)
	}
}

func TestTimeback(t *testing.T) {
	// 20% of tuition, floored at 5,000 and capped at 15,000.
	if got := Timeback(20000); got != 5000 {
		t.Errorf("timeback(20000) = %f, want floor 5000 (20%% is only 4000)", got)
	}
	if got := Timeback(40000); got != 8000 {
		t.Errorf("timeback(40000) = %f, want 8000", got)
	}
	if got := Timeback(100000); got != 15000 {
		t.Errorf("timeback(100000) = %f, want cap 15000", got)
	}
}

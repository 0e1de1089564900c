package cluster

import (
	"testing"

	"github.com/pkg/errors"
)

func TestGradePoints(t *testing.T) {
	tests := []struct {
		grade Grade
		want  int
	}{
		{GradeA, 12}, {GradeAMinus, 11}, {GradeBPlus, 10}, {GradeB, 9},
		{GradeBMinus, 8}, {GradeCPlus, 7}, {GradeC, 6}, {GradeCMinus, 5},
		{GradeDPlus, 4}, {GradeD, 3}, {GradeDMinus, 2}, {GradeE, 1},
	}
	for _, tt := range tests {
		t.Run(string(tt.grade), func(t *testing.T) {
			got, err := tt.grade.Points()
			if err != nil {
				t.Fatalf("Points() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Points() = %d; want %d", got, tt.want)
			}
		})
	}
}

// a better grade always carries strictly more points
func TestGradePointsMonotonic(t *testing.T) {
	for i := 1; i < len(Grades); i++ {
		better, _ := Grades[i-1].Points()
		worse, _ := Grades[i].Points()
		if better <= worse {
			t.Errorf("%s (%d pts) should outrank %s (%d pts)", Grades[i-1], better, Grades[i], worse)
		}
	}
}

func TestGradePointsInvalid(t *testing.T) {
	for _, s := range []string{"", "F", "a", "A+", "B town", "AB"} {
		t.Run(s, func(t *testing.T) {
			if _, err := Grade(s).Points(); errors.Cause(err) != ErrInvalidGrade {
				t.Errorf("Points(%q) error = %v; want ErrInvalidGrade", s, err)
			}
		})
	}
}

func TestParseGrade(t *testing.T) {
	g, err := ParseGrade("B+")
	if err != nil {
		t.Fatalf("ParseGrade() error = %v", err)
	}
	if g != GradeBPlus {
		t.Errorf("ParseGrade() = %v; want %v", g, GradeBPlus)
	}

	if _, err := ParseGrade("Z"); errors.Cause(err) != ErrInvalidGrade {
		t.Errorf("ParseGrade(Z) error = %v; want ErrInvalidGrade", err)
	}
}

package cluster

import (
	"github.com/pkg/errors"
)

// ErrInvalidGrade is returned when a grade symbol is not one of the 12 KCSE grades.
// It must never be silently coerced to 0 points.
var ErrInvalidGrade = errors.New("invalid KCSE grade")

// Grade is a KCSE letter grade.
type Grade string

const (
	GradeA      Grade = "A"
	GradeAMinus Grade = "A-"
	GradeBPlus  Grade = "B+"
	GradeB      Grade = "B"
	GradeBMinus Grade = "B-"
	GradeCPlus  Grade = "C+"
	GradeC      Grade = "C"
	GradeCMinus Grade = "C-"
	GradeDPlus  Grade = "D+"
	GradeD      Grade = "D"
	GradeDMinus Grade = "D-"
	GradeE      Grade = "E"
)

// Grades lists all KCSE grades from best to worst.
var Grades = []Grade{
	GradeA, GradeAMinus, GradeBPlus, GradeB, GradeBMinus, GradeCPlus,
	GradeC, GradeCMinus, GradeDPlus, GradeD, GradeDMinus, GradeE,
}

// gradePoints maps each grade to its KUCCPS point value.
// Strictly monotonic: a better grade always carries more points.
var gradePoints = map[Grade]int{
	GradeA:      12,
	GradeAMinus: 11,
	GradeBPlus:  10,
	GradeB:      9,
	GradeBMinus: 8,
	GradeCPlus:  7,
	GradeC:      6,
	GradeCMinus: 5,
	GradeDPlus:  4,
	GradeD:      3,
	GradeDMinus: 2,
	GradeE:      1,
}

// Points returns the point value of g in [1, 12].
func (g Grade) Points() (int, error) {
	pts, ok := gradePoints[g]
	if !ok {
		return 0, errors.Wrapf(ErrInvalidGrade, "grade %q", string(g))
	}
	return pts, nil
}

// IsValid reports whether g is one of the 12 defined grades.
func (g Grade) IsValid() bool {
	_, ok := gradePoints[g]
	return ok
}

// ParseGrade parses a grade symbol such as "A-" or "B+".
func ParseGrade(s string) (Grade, error) {
	g := Grade(s)
	if !g.IsValid() {
		return "", errors.Wrapf(ErrInvalidGrade, "grade %q", s)
	}
	return g, nil
}

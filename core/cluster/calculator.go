package cluster

import (
	"sort"

	"github.com/pkg/errors"
)

// ErrDuplicateSubject is returned when a caller supplies two grades for the
// same subject in one request. A learner has exactly one grade per subject,
// so this is a caller bug; guessing at the intended grade would hide it.
var ErrDuplicateSubject = errors.New("duplicate subject grade")

// SubjectGrade is one (subject, grade) pair of a learner's results.
type SubjectGrade struct {
	SubjectID string `json:"subject_id"`
	Grade     Grade  `json:"grade"`
}

// TopFourTotal computes the KUCCPS cluster-point total over the given pairs:
// the sum of the 4 highest point values among them.
//
// Fewer than 4 pairs yields 0 — "insufficient data to compute a score", not an
// error, so the UI can call this on every grade selection while the form is
// still incomplete. Result is in [0, 48].
func TopFourTotal(grades []SubjectGrade) (int, error) {
	seen := make(map[string]bool, len(grades))
	points := make([]int, 0, len(grades))
	for _, sg := range grades {
		if seen[sg.SubjectID] {
			return 0, errors.Wrapf(ErrDuplicateSubject, "subject %q", sg.SubjectID)
		}
		seen[sg.SubjectID] = true

		pts, err := sg.Grade.Points()
		if err != nil {
			return 0, err
		}
		points = append(points, pts)
	}

	if len(points) < ClusterSize {
		return 0, nil
	}

	sort.Sort(sort.Reverse(sort.IntSlice(points)))
	var total int
	for _, pts := range points[:ClusterSize] {
		total += pts
	}
	return total, nil
}

// TopFourTotalMap is TopFourTotal over a subject→grade mapping, the shape the
// profile form holds its state in. A map cannot carry duplicates, so the only
// error left is an invalid grade.
func TopFourTotalMap(gradesBySubject map[string]Grade) (int, error) {
	pairs := make([]SubjectGrade, 0, len(gradesBySubject))
	for sid, g := range gradesBySubject {
		pairs = append(pairs, SubjectGrade{SubjectID: sid, Grade: g})
	}
	return TopFourTotal(pairs)
}

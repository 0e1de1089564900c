package cluster

import (
	"reflect"
	"testing"
)

func singleCourseCatalog(t *testing.T) *Catalog {
	t.Helper()
	cat, err := NewCatalog([]CourseCutoff{validCourse()}) // x: 44/40/37 over maths,physics,chemistry,english
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	return cat
}

func bucketIDs(entries []MatchEntry) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestMatchConcreteScenario(t *testing.T) {
	cat := singleCourseCatalog(t)

	// maths=A(12), physics=A-(11), chemistry=B+(10), english=B(9) → 42 → moderate
	grades := map[string]Grade{
		"maths":     GradeA,
		"physics":   GradeAMinus,
		"chemistry": GradeBPlus,
		"english":   GradeB,
	}
	res := Match(grades, cat)
	if len(res.ModerateChance) != 1 || res.ModerateChance[0].ID != "x" {
		t.Fatalf("expected x in moderate_chance; got %+v", res)
	}
	if got := res.ModerateChance[0].StudentPoints; got != 42 {
		t.Errorf("StudentPoints = %d; want 42", got)
	}
	if len(res.HighlyCompetitive) != 0 || len(res.StretchOptions) != 0 {
		t.Errorf("other buckets should be empty; got %+v", res)
	}

	// english up to A → 45 → highly competitive
	grades["english"] = GradeA
	res = Match(grades, cat)
	if len(res.HighlyCompetitive) != 1 || res.HighlyCompetitive[0].StudentPoints != 45 {
		t.Fatalf("expected x in highly_competitive with 45 points; got %+v", res)
	}

	// english removed → course absent from all buckets
	delete(grades, "english")
	res = Match(grades, cat)
	if len(res.HighlyCompetitive)+len(res.ModerateChance)+len(res.StretchOptions) != 0 {
		t.Errorf("course with partial cluster coverage must be excluded; got %+v", res)
	}
}

// boundaries are inclusive on the high side
func TestMatchTierBoundaries(t *testing.T) {
	cat := singleCourseCatalog(t)

	tests := []struct {
		name    string
		english Grade // maths=A(12), physics=A(12), chemistry=B-(8) fixed → 32 + english
		bucket  func(MatchResult) []MatchEntry
		points  int
	}{
		{name: "exactly high", english: GradeA, points: 44, // 32+12
			bucket: func(r MatchResult) []MatchEntry { return r.HighlyCompetitive }},
		{name: "one below high", english: GradeAMinus, points: 43,
			bucket: func(r MatchResult) []MatchEntry { return r.ModerateChance }},
		{name: "exactly mid", english: Grade("B-"), points: 40, // 32+8
			bucket: func(r MatchResult) []MatchEntry { return r.ModerateChance }},
		{name: "exactly low", english: GradeCMinus, points: 37, // 32+5
			bucket: func(r MatchResult) []MatchEntry { return r.StretchOptions }},
		{name: "one below low", english: GradeDPlus, points: 36,
			bucket: nil}, // excluded
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Match(map[string]Grade{
				"maths":     GradeA,
				"physics":   GradeA,
				"chemistry": GradeBMinus,
				"english":   tt.english,
			}, cat)

			matched := len(res.HighlyCompetitive) + len(res.ModerateChance) + len(res.StretchOptions)
			if tt.bucket == nil {
				if matched != 0 {
					t.Fatalf("expected exclusion; got %+v", res)
				}
				return
			}
			entries := tt.bucket(res)
			if len(entries) != 1 {
				t.Fatalf("expected 1 entry in target bucket; got %+v", res)
			}
			if matched != 1 {
				t.Fatalf("course must appear in exactly one bucket; got %+v", res)
			}
			if entries[0].StudentPoints != tt.points {
				t.Errorf("StudentPoints = %d; want %d", entries[0].StudentPoints, tt.points)
			}
		})
	}
}

func TestMatchEmptyInput(t *testing.T) {
	res := Match(nil, DefaultCatalog)
	if len(res.HighlyCompetitive)+len(res.ModerateChance)+len(res.StretchOptions) != 0 {
		t.Errorf("empty learner input must yield three empty buckets; got %+v", res)
	}
}

// a course surfaces iff all 4 cluster subjects are graded and the total clears CutoffLow
func TestMatchClusterCompletenessGate(t *testing.T) {
	cat := singleCourseCatalog(t)

	// three straight As cannot compensate for a missing cluster subject
	res := Match(map[string]Grade{
		"maths":     GradeA,
		"physics":   GradeA,
		"chemistry": GradeA,
		// english missing
		"kiswahili": GradeA, // irrelevant to x's cluster
		"biology":   GradeA,
	}, cat)
	if len(res.HighlyCompetitive)+len(res.ModerateChance)+len(res.StretchOptions) != 0 {
		t.Errorf("course with missing cluster subject must never surface; got %+v", res)
	}
}

func TestMatchBucketOrdering(t *testing.T) {
	mk := func(id string, cluster [4]string) CourseCutoff {
		return CourseCutoff{
			ID: id, Name: id, Level: LevelDegree, Category: "Test",
			Cluster: cluster,
			// cutoffs low enough that every course lands in highly_competitive
			CutoffHigh: 20, CutoffMid: 16, CutoffLow: 12,
		}
	}
	cat, err := NewCatalog([]CourseCutoff{
		mk("s", [4]string{"maths", "physics", "chemistry", "biology"}),   // 44
		mk("r", [4]string{"english", "kiswahili", "biology", "maths"}),   // 37
		mk("p", [4]string{"maths", "physics", "chemistry", "english"}),   // 45
		mk("q", [4]string{"maths", "physics", "chemistry", "biology"}),   // 44, ties with s
	})
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}

	res := Match(map[string]Grade{
		"maths":     GradeA,      // 12
		"physics":   GradeA,      // 12
		"chemistry": GradeAMinus, // 11
		"english":   GradeBPlus,  // 10
		"kiswahili": GradeC,      // 6
		"biology":   GradeB,      // 9
	}, cat)

	// points descending; the s/q tie keeps catalog order
	if got, want := bucketIDs(res.HighlyCompetitive), []string{"p", "s", "q", "r"}; !reflect.DeepEqual(got, want) {
		t.Errorf("bucket order = %v; want %v", got, want)
	}
}

func TestMatchIdempotent(t *testing.T) {
	grades := map[string]Grade{
		"maths":     GradeA,
		"english":   GradeAMinus,
		"kiswahili": GradeBPlus,
		"physics":   GradeB,
		"chemistry": GradeBMinus,
		"biology":   GradeCPlus,
		"business":  GradeC,
	}
	first := Match(grades, DefaultCatalog)
	second := Match(grades, DefaultCatalog)
	if !reflect.DeepEqual(first, second) {
		t.Error("Match() must be deterministic for identical input")
	}
}

// the matcher reads but never writes its inputs
func TestMatchDoesNotMutate(t *testing.T) {
	grades := map[string]Grade{
		"maths":     GradeA,
		"physics":   GradeB,
		"chemistry": GradeC,
		"english":   GradeD,
	}
	before := DefaultCatalog.Courses()
	_ = Match(grades, DefaultCatalog)
	after := DefaultCatalog.Courses()
	if !reflect.DeepEqual(before, after) {
		t.Error("catalog mutated by Match()")
	}
	if len(grades) != 4 {
		t.Error("learner input mutated by Match()")
	}
}

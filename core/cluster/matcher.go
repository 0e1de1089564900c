package cluster

import "sort"

type (
	// MatchEntry is one matched course together with the learner's computed
	// cluster-point total for it, so consumers need not re-query the catalog.
	MatchEntry struct {
		CourseCutoff
		StudentPoints int `json:"student_points"`
	}

	// MatchResult buckets every evaluated course into an eligibility tier.
	// Courses whose total falls below CutoffLow appear in no bucket: that is
	// "not a realistic match", not an error.
	MatchResult struct {
		HighlyCompetitive []MatchEntry `json:"highly_competitive"`
		ModerateChance    []MatchEntry `json:"moderate_chance"`
		StretchOptions    []MatchEntry `json:"stretch_options"`
	}
)

// Match classifies every course in cat against the learner's grades.
//
// A course is evaluated only when the learner has grades for all 4 of its
// cluster subjects; partial coverage skips the course entirely (all-or-nothing
// by design, not a scoring penalty). Tier boundaries are inclusive on the high
// side: total == CutoffHigh is highly competitive, == CutoffMid is moderate,
// == CutoffLow is a stretch option.
//
// Pure function of (cat, gradesBySubject): no mutation, identical input gives
// identical output including ordering, safe for concurrent callers.
func Match(gradesBySubject map[string]Grade, cat *Catalog) MatchResult {
	var res MatchResult

	for _, course := range cat.courses {
		total, ok := clusterTotal(course, gradesBySubject)
		if !ok {
			continue
		}

		entry := MatchEntry{CourseCutoff: course, StudentPoints: total}
		switch {
		case total >= course.CutoffHigh:
			res.HighlyCompetitive = append(res.HighlyCompetitive, entry)
		case total >= course.CutoffMid:
			res.ModerateChance = append(res.ModerateChance, entry)
		case total >= course.CutoffLow:
			res.StretchOptions = append(res.StretchOptions, entry)
		}
		// below CutoffLow: excluded
	}

	sortEntries(res.HighlyCompetitive)
	sortEntries(res.ModerateChance)
	sortEntries(res.StretchOptions)
	return res
}

// clusterTotal sums the learner's points over the course's own 4 cluster
// subjects. Exactly 4 are required and present, so "top 4 of 4" reduces to the
// plain sum. Returns ok=false when any cluster subject is missing from the input.
func clusterTotal(course CourseCutoff, gradesBySubject map[string]Grade) (int, bool) {
	var total int
	for _, sid := range course.Cluster {
		g, ok := gradesBySubject[sid]
		if !ok {
			return 0, false
		}
		pts, err := g.Points()
		if err != nil {
			// Grades are validated at the API boundary; an invalid grade here
			// is treated as a missing one so matching stays total.
			return 0, false
		}
		total += pts
	}
	return total, true
}

// sortEntries orders a bucket by student points descending; ties keep catalog order.
func sortEntries(entries []MatchEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].StudentPoints > entries[j].StudentPoints
	})
}

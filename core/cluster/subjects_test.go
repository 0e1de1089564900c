package cluster

import "testing"

func TestSubjectTaxonomy(t *testing.T) {
	all := Subjects()
	if len(all) != 13 {
		t.Fatalf("expected 13 subjects; got %d", len(all))
	}

	seen := make(map[string]bool)
	for _, s := range all {
		if seen[s.ID] {
			t.Errorf("subject %q declared more than once", s.ID)
		}
		seen[s.ID] = true
	}

	// every subject belongs to exactly one group, and group listings
	// preserve declaration order
	var total int
	for _, grp := range SubjectGroups {
		prev := -1
		for _, s := range SubjectsInGroup(grp) {
			total++
			if s.Group != grp {
				t.Errorf("subject %q in group %q listing has group %q", s.ID, grp, s.Group)
			}
			idx := subjectIndex(t, all, s.ID)
			if idx <= prev {
				t.Errorf("group %q listing not in declaration order at %q", grp, s.ID)
			}
			prev = idx
		}
	}
	if total != len(all) {
		t.Errorf("group listings cover %d subjects; want %d", total, len(all))
	}
}

func TestSubjectByID(t *testing.T) {
	s, ok := SubjectByID("physics")
	if !ok {
		t.Fatal("physics not found")
	}
	if s.Group != GroupSciences {
		t.Errorf("physics group = %q; want %q", s.Group, GroupSciences)
	}

	if _, ok := SubjectByID("alchemy"); ok {
		t.Error("unknown subject id should not resolve")
	}
}

func subjectIndex(t *testing.T, all []Subject, id string) int {
	t.Helper()
	for i, s := range all {
		if s.ID == id {
			return i
		}
	}
	t.Fatalf("subject %q not in taxonomy", id)
	return -1
}

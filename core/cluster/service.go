package cluster

type (
	// Service is the guidance surface consumed by the API layer: catalog
	// accessors for the selection UIs plus the two scoring operations.
	Service interface {
		Subjects() []Subject
		SubjectsInGroup(group SubjectGroup) []Subject
		Grades() []Grade
		Courses() []CourseCutoff
		Categories() []string
		TopFourTotal(gradesBySubject map[string]Grade) (int, error)
		Match(gradesBySubject map[string]Grade) MatchResult
	}

	service struct {
		cat *Catalog
	}
)

var _ Service = (*service)(nil)

// NewService returns a Service over the given catalog. The catalog is injected
// rather than hard-coded so the matcher stays testable against synthetic data.
func NewService(cat *Catalog) Service {
	return &service{cat: cat}
}

func (svc *service) Subjects() []Subject { return Subjects() }

func (svc *service) SubjectsInGroup(group SubjectGroup) []Subject { return SubjectsInGroup(group) }

func (svc *service) Grades() []Grade {
	out := make([]Grade, len(Grades))
	copy(out, Grades)
	return out
}

func (svc *service) Courses() []CourseCutoff { return svc.cat.Courses() }

func (svc *service) Categories() []string { return svc.cat.Categories() }

func (svc *service) TopFourTotal(gradesBySubject map[string]Grade) (int, error) {
	return TopFourTotalMap(gradesBySubject)
}

func (svc *service) Match(gradesBySubject map[string]Grade) MatchResult {
	return Match(gradesBySubject, svc.cat)
}

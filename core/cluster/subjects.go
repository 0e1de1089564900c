package cluster

// SubjectGroup tags a subject with its KCSE grouping.
type SubjectGroup string

const (
	GroupCompulsory SubjectGroup = "compulsory"
	GroupSciences   SubjectGroup = "sciences"
	GroupHumanities SubjectGroup = "humanities"
	GroupTechnical  SubjectGroup = "technical"
)

// SubjectGroups lists the groups in the order the selection UI presents them.
var SubjectGroups = []SubjectGroup{GroupCompulsory, GroupSciences, GroupHumanities, GroupTechnical}

// Subject is one KCSE examinable subject. Immutable reference data.
type Subject struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Group SubjectGroup `json:"group"`
}

// subjects is the fixed taxonomy: 13 subjects, each in exactly one group.
// Declaration order is the order the UI displays them in; it carries no
// other meaning.
var subjects = []Subject{
	{ID: "maths", Name: "Mathematics", Group: GroupCompulsory},
	{ID: "english", Name: "English", Group: GroupCompulsory},
	{ID: "kiswahili", Name: "Kiswahili", Group: GroupCompulsory},
	{ID: "biology", Name: "Biology", Group: GroupSciences},
	{ID: "physics", Name: "Physics", Group: GroupSciences},
	{ID: "chemistry", Name: "Chemistry", Group: GroupSciences},
	{ID: "history", Name: "History & Government", Group: GroupHumanities},
	{ID: "geography", Name: "Geography", Group: GroupHumanities},
	{ID: "cre", Name: "Christian Religious Education", Group: GroupHumanities},
	{ID: "business", Name: "Business Studies", Group: GroupTechnical},
	{ID: "agriculture", Name: "Agriculture", Group: GroupTechnical},
	{ID: "computer", Name: "Computer Studies", Group: GroupTechnical},
	{ID: "homescience", Name: "Home Science", Group: GroupTechnical},
}

var subjectsByID = func() map[string]Subject {
	m := make(map[string]Subject, len(subjects))
	for _, s := range subjects {
		m[s.ID] = s
	}
	return m
}()

// Subjects returns the full subject taxonomy in declaration order.
func Subjects() []Subject {
	out := make([]Subject, len(subjects))
	copy(out, subjects)
	return out
}

// SubjectsInGroup returns the subjects tagged with group, in declaration order.
func SubjectsInGroup(group SubjectGroup) []Subject {
	var out []Subject
	for _, s := range subjects {
		if s.Group == group {
			out = append(out, s)
		}
	}
	return out
}

// SubjectByID looks a subject up by its identifier.
func SubjectByID(id string) (Subject, bool) {
	s, ok := subjectsByID[id]
	return s, ok
}

package mentor

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/mwendwa/elimika/core"
)

// ErrDirectoryIntegrity is returned at construction time for malformed
// directory data; never during lookups.
var ErrDirectoryIntegrity = errors.New("mentor directory integrity violation")

// Mentor is one directory entry. Immutable reference data.
type Mentor struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Title  string `json:"title"`
	Field  string `json:"field"` // professional field, e.g. "Engineering"
	County string `json:"county"`
	Email  string `json:"email"`
	Bio    string `json:"bio"`
}

// QueryFilter narrows directory listings; empty fields match everything.
type QueryFilter struct {
	Search string `query:"search"` // case-insensitive match on name, title or field
	Field  string `query:"field"`
	County string `query:"county"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Field = core.CleanString(qf.Field)
	qf.County = core.CleanString(qf.County)
}

// Directory is a validated, immutable mentor listing.
type Directory struct {
	mentors []Mentor
	byID    map[string]Mentor
}

func NewDirectory(mentors []Mentor) (*Directory, error) {
	dir := &Directory{
		mentors: make([]Mentor, len(mentors)),
		byID:    make(map[string]Mentor, len(mentors)),
	}
	copy(dir.mentors, mentors)

	for _, m := range dir.mentors {
		if m.ID == "" || m.Name == "" {
			return nil, errors.Wrapf(ErrDirectoryIntegrity, "mentor %q: missing id or name", m.ID)
		}
		if _, dup := dir.byID[m.ID]; dup {
			return nil, errors.Wrapf(ErrDirectoryIntegrity, "mentor %q: duplicate id", m.ID)
		}
		dir.byID[m.ID] = m
	}
	return dir, nil
}

func MustNewDirectory(mentors []Mentor) *Directory {
	dir, err := NewDirectory(mentors)
	if err != nil {
		panic(err)
	}
	return dir
}

// All returns every mentor in declaration order.
func (dir *Directory) All() []Mentor {
	out := make([]Mentor, len(dir.mentors))
	copy(out, dir.mentors)
	return out
}

func (dir *Directory) GetByID(id string) (Mentor, bool) {
	m, ok := dir.byID[id]
	return m, ok
}

// Filter applies AND over the filter fields, preserving declaration order.
func (dir *Directory) Filter(qf QueryFilter) []Mentor {
	qf.Clean()
	search := strings.ToLower(qf.Search)

	out := make([]Mentor, 0, len(dir.mentors))
	for _, m := range dir.mentors {
		if qf.Field != "" && !strings.EqualFold(m.Field, qf.Field) {
			continue
		}
		if qf.County != "" && !strings.EqualFold(m.County, qf.County) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(m.Name), search) &&
			!strings.Contains(strings.ToLower(m.Title), search) &&
			!strings.Contains(strings.ToLower(m.Field), search) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Fields returns the distinct professional fields in first-seen order.
func (dir *Directory) Fields() []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range dir.mentors {
		if !seen[m.Field] {
			seen[m.Field] = true
			out = append(out, m.Field)
		}
	}
	return out
}

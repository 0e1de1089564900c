package scholarship

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/mwendwa/elimika/core"
)

// ErrCatalogIntegrity is returned at construction time for malformed
// scholarship data; never during lookups.
var ErrCatalogIntegrity = errors.New("scholarship catalog integrity violation")

// Level a scholarship funds study at.
type Level string

const (
	LevelSecondary     Level = "Secondary"
	LevelUndergraduate Level = "Undergraduate"
	LevelPostgraduate  Level = "Postgraduate"
)

var levels = map[Level]bool{
	LevelSecondary:     true,
	LevelUndergraduate: true,
	LevelPostgraduate:  true,
}

// Scholarship is one catalog entry. Immutable reference data.
type Scholarship struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Sponsor  string    `json:"sponsor"`
	Level    Level     `json:"level"`
	Deadline time.Time `json:"deadline"`
	Link     string    `json:"link"`
}

// Open reports whether applications are still open at the given time.
func (s Scholarship) Open(now time.Time) bool {
	return s.Deadline.IsZero() || now.Before(s.Deadline)
}

type QueryFilter struct {
	Search   string `query:"search"` // case-insensitive match on name or sponsor
	Level    Level  `query:"level"`
	OpenOnly bool   `query:"open"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}

// Catalog is a validated, immutable scholarship listing.
type Catalog struct {
	scholarships []Scholarship
	byID         map[string]Scholarship
}

func NewCatalog(scholarships []Scholarship) (*Catalog, error) {
	cat := &Catalog{
		scholarships: make([]Scholarship, len(scholarships)),
		byID:         make(map[string]Scholarship, len(scholarships)),
	}
	copy(cat.scholarships, scholarships)

	for _, s := range cat.scholarships {
		if s.ID == "" || s.Name == "" {
			return nil, errors.Wrapf(ErrCatalogIntegrity, "scholarship %q: missing id or name", s.ID)
		}
		if _, dup := cat.byID[s.ID]; dup {
			return nil, errors.Wrapf(ErrCatalogIntegrity, "scholarship %q: duplicate id", s.ID)
		}
		if !levels[s.Level] {
			return nil, errors.Wrapf(ErrCatalogIntegrity, "scholarship %q: unknown level %q", s.ID, s.Level)
		}
		cat.byID[s.ID] = s
	}
	return cat, nil
}

func MustNewCatalog(scholarships []Scholarship) *Catalog {
	cat, err := NewCatalog(scholarships)
	if err != nil {
		panic(err)
	}
	return cat
}

func (cat *Catalog) All() []Scholarship {
	out := make([]Scholarship, len(cat.scholarships))
	copy(out, cat.scholarships)
	return out
}

func (cat *Catalog) GetByID(id string) (Scholarship, bool) {
	s, ok := cat.byID[id]
	return s, ok
}

// Filter applies AND over the filter fields, preserving declaration order.
func (cat *Catalog) Filter(qf QueryFilter, now time.Time) []Scholarship {
	qf.Clean()
	search := strings.ToLower(qf.Search)

	out := make([]Scholarship, 0, len(cat.scholarships))
	for _, s := range cat.scholarships {
		if qf.Level != "" && s.Level != qf.Level {
			continue
		}
		if qf.OpenOnly && !s.Open(now) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(s.Name), search) &&
			!strings.Contains(strings.ToLower(s.Sponsor), search) {
			continue
		}
		out = append(out, s)
	}
	return out
}

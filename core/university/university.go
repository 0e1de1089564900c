package university

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/mwendwa/elimika/core"
)

// ErrCatalogIntegrity is returned at construction time for malformed
// university data; never during lookups.
var ErrCatalogIntegrity = errors.New("university catalog integrity violation")

// Kind distinguishes public from private institutions.
type Kind string

const (
	KindPublic  Kind = "public"
	KindPrivate Kind = "private"
)

var kinds = map[Kind]bool{
	KindPublic:  true,
	KindPrivate: true,
}

// University is one catalog entry. Immutable reference data.
type University struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Town    string `json:"town"`
	Kind    Kind   `json:"kind"`
	Website string `json:"website"`
}

type QueryFilter struct {
	Search string `query:"search"` // case-insensitive match on name or town
	Kind   Kind   `query:"kind"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}

// Catalog is a validated, immutable university listing.
type Catalog struct {
	universities []University
	byID         map[string]University
}

func NewCatalog(universities []University) (*Catalog, error) {
	cat := &Catalog{
		universities: make([]University, len(universities)),
		byID:         make(map[string]University, len(universities)),
	}
	copy(cat.universities, universities)

	for _, u := range cat.universities {
		if u.ID == "" || u.Name == "" {
			return nil, errors.Wrapf(ErrCatalogIntegrity, "university %q: missing id or name", u.ID)
		}
		if _, dup := cat.byID[u.ID]; dup {
			return nil, errors.Wrapf(ErrCatalogIntegrity, "university %q: duplicate id", u.ID)
		}
		if !kinds[u.Kind] {
			return nil, errors.Wrapf(ErrCatalogIntegrity, "university %q: unknown kind %q", u.ID, u.Kind)
		}
		cat.byID[u.ID] = u
	}
	return cat, nil
}

func MustNewCatalog(universities []University) *Catalog {
	cat, err := NewCatalog(universities)
	if err != nil {
		panic(err)
	}
	return cat
}

func (cat *Catalog) All() []University {
	out := make([]University, len(cat.universities))
	copy(out, cat.universities)
	return out
}

func (cat *Catalog) GetByID(id string) (University, bool) {
	u, ok := cat.byID[id]
	return u, ok
}

// Filter applies AND over the filter fields, preserving declaration order.
func (cat *Catalog) Filter(qf QueryFilter) []University {
	qf.Clean()
	search := strings.ToLower(qf.Search)

	out := make([]University, 0, len(cat.universities))
	for _, u := range cat.universities {
		if qf.Kind != "" && u.Kind != qf.Kind {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(u.Name), search) &&
			!strings.Contains(strings.ToLower(u.Town), search) {
			continue
		}
		out = append(out, u)
	}
	return out
}

package cluster

import (
	"github.com/pkg/errors"
)

// ErrCatalogIntegrity is returned once, at catalog construction time, when a
// CourseCutoff references an undefined subject or violates high ≥ mid ≥ low.
// A catalog that loaded successfully can never produce it during matching.
var ErrCatalogIntegrity = errors.New("course catalog integrity violation")

// Level is an academic programme level.
type Level string

const (
	LevelDegree      Level = "Degree"
	LevelDiploma     Level = "Diploma"
	LevelCertificate Level = "Certificate"
	LevelArtisan     Level = "Artisan"
)

var levels = map[Level]bool{
	LevelDegree:      true,
	LevelDiploma:     true,
	LevelCertificate: true,
	LevelArtisan:     true,
}

const (
	// ClusterSize is the number of subjects every course cluster draws from.
	ClusterSize = 4

	// MinClusterPoints and MaxClusterPoints bound the feasible cutoff range:
	// 4 subjects at 1..12 points each.
	MinClusterPoints = ClusterSize * 1
	MaxClusterPoints = ClusterSize * 12
)

// CourseCutoff is one programme's admission thresholds for its subject cluster.
// Fixed at build time; never mutated at runtime.
type CourseCutoff struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Level    Level     `json:"level"`
	Category string    `json:"category"`
	Cluster  [4]string `json:"cluster"` // subject ids, order-insensitive

	CutoffHigh int `json:"cutoff_high"`
	CutoffMid  int `json:"cutoff_mid"`
	CutoffLow  int `json:"cutoff_low"`
}

// Catalog is a validated, immutable collection of course cutoffs.
type Catalog struct {
	courses []CourseCutoff
	byID    map[string]CourseCutoff
}

// NewCatalog validates the given cutoffs and returns a catalog over them.
// Validation is the load-time integrity gate: duplicate course ids, unknown
// cluster subjects, misordered thresholds and infeasible point values are all
// rejected here with ErrCatalogIntegrity rather than surfacing mid-match.
func NewCatalog(courses []CourseCutoff) (*Catalog, error) {
	cat := &Catalog{
		courses: make([]CourseCutoff, len(courses)),
		byID:    make(map[string]CourseCutoff, len(courses)),
	}
	copy(cat.courses, courses)

	for _, c := range cat.courses {
		if c.ID == "" {
			return nil, errors.Wrapf(ErrCatalogIntegrity, "course %q: empty id", c.Name)
		}
		if _, dup := cat.byID[c.ID]; dup {
			return nil, errors.Wrapf(ErrCatalogIntegrity, "course %q: duplicate id", c.ID)
		}
		if !levels[c.Level] {
			return nil, errors.Wrapf(ErrCatalogIntegrity, "course %q: unknown level %q", c.ID, c.Level)
		}
		seen := make(map[string]bool, ClusterSize)
		for _, sid := range c.Cluster {
			if _, ok := SubjectByID(sid); !ok {
				return nil, errors.Wrapf(ErrCatalogIntegrity, "course %q: unknown subject %q", c.ID, sid)
			}
			if seen[sid] {
				return nil, errors.Wrapf(ErrCatalogIntegrity, "course %q: subject %q repeated in cluster", c.ID, sid)
			}
			seen[sid] = true
		}
		if !(c.CutoffHigh >= c.CutoffMid && c.CutoffMid >= c.CutoffLow) {
			return nil, errors.Wrapf(ErrCatalogIntegrity,
				"course %q: cutoffs not ordered high(%d) ≥ mid(%d) ≥ low(%d)",
				c.ID, c.CutoffHigh, c.CutoffMid, c.CutoffLow)
		}
		if c.CutoffLow < MinClusterPoints || c.CutoffHigh > MaxClusterPoints {
			return nil, errors.Wrapf(ErrCatalogIntegrity,
				"course %q: cutoffs outside feasible range [%d, %d]",
				c.ID, MinClusterPoints, MaxClusterPoints)
		}
		cat.byID[c.ID] = c
	}
	return cat, nil
}

// MustNewCatalog is NewCatalog that panics on integrity violations.
// Reserved for the built-in catalog, where a violation is a programming error
// that should halt start-up.
func MustNewCatalog(courses []CourseCutoff) *Catalog {
	cat, err := NewCatalog(courses)
	if err != nil {
		panic(err)
	}
	return cat
}

// Courses returns all cutoffs in declaration order.
func (cat *Catalog) Courses() []CourseCutoff {
	out := make([]CourseCutoff, len(cat.courses))
	copy(out, cat.courses)
	return out
}

// CourseByID looks a course up by its identifier.
func (cat *Catalog) CourseByID(id string) (CourseCutoff, bool) {
	c, ok := cat.byID[id]
	return c, ok
}

// Categories returns the distinct course categories in first-seen order.
// The career-guidance pages group programmes by these.
func (cat *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range cat.courses {
		if !seen[c.Category] {
			seen[c.Category] = true
			out = append(out, c.Category)
		}
	}
	return out
}

func (cat *Catalog) Len() int { return len(cat.courses) }

package scholarship

import "time"

// DefaultCatalog is the built-in scholarship listing, validated at init.
var DefaultCatalog = MustNewCatalog(defaultScholarships)

var defaultScholarships = []Scholarship{
	{
		ID: "equity-wings", Name: "Wings to Fly", Sponsor: "Equity Group Foundation",
		Level:    LevelSecondary,
		Deadline: time.Date(2026, time.November, 30, 23, 59, 59, 0, time.UTC),
		Link:     "https://equitygroupfoundation.com/wings-to-fly",
	},
	{
		ID: "kcb-foundation", Name: "KCB Foundation Scholarship", Sponsor: "KCB Foundation",
		Level:    LevelSecondary,
		Deadline: time.Date(2026, time.October, 15, 23, 59, 59, 0, time.UTC),
		Link:     "https://kcbgroup.com/foundation/scholarships",
	},
	{
		ID: "helb-undergrad", Name: "HELB Undergraduate Loan", Sponsor: "Higher Education Loans Board",
		Level: LevelUndergraduate,
		Link:  "https://www.helb.co.ke",
	},
	{
		ID: "mastercard-fdn", Name: "Mastercard Foundation Scholars Program", Sponsor: "Mastercard Foundation",
		Level:    LevelUndergraduate,
		Deadline: time.Date(2027, time.February, 28, 23, 59, 59, 0, time.UTC),
		Link:     "https://mastercardfdn.org/all/scholars",
	},
	{
		ID: "county-bursary", Name: "County Government Bursary Fund", Sponsor: "County Governments",
		Level: LevelUndergraduate,
		Link:  "https://www.cog.go.ke",
	},
	{
		ID: "chevening", Name: "Chevening Scholarship", Sponsor: "UK Foreign, Commonwealth & Development Office",
		Level:    LevelPostgraduate,
		Deadline: time.Date(2026, time.November, 7, 23, 59, 59, 0, time.UTC),
		Link:     "https://www.chevening.org",
	},
	{
		ID: "daad", Name: "DAAD In-Region Scholarship", Sponsor: "German Academic Exchange Service",
		Level:    LevelPostgraduate,
		Deadline: time.Date(2026, time.September, 30, 23, 59, 59, 0, time.UTC),
		Link:     "https://www.daad.de/en",
	},
}

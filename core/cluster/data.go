package cluster

// DefaultCatalog is the built-in KUCCPS-style cutoff catalog the platform
// ships with. Validated once at package init; a bad entry halts start-up.
var DefaultCatalog = MustNewCatalog(defaultCourses)

// defaultCourses approximates historical KUCCPS cluster cutoffs. Thresholds
// are the three tiers the matcher classifies against, not official placement
// figures.
var defaultCourses = []CourseCutoff{
	// Medical & Health Sciences
	{
		ID: "medicine", Name: "Bachelor of Medicine & Surgery", Level: LevelDegree,
		Category: "Medical & Health Sciences",
		Cluster:  [4]string{"biology", "chemistry", "maths", "english"},
		CutoffHigh: 45, CutoffMid: 43, CutoffLow: 41,
	},
	{
		ID: "pharmacy", Name: "Bachelor of Pharmacy", Level: LevelDegree,
		Category: "Medical & Health Sciences",
		Cluster:  [4]string{"biology", "chemistry", "maths", "english"},
		CutoffHigh: 44, CutoffMid: 42, CutoffLow: 40,
	},
	{
		ID: "nursing", Name: "Bachelor of Science in Nursing", Level: LevelDegree,
		Category: "Medical & Health Sciences",
		Cluster:  [4]string{"biology", "chemistry", "english", "kiswahili"},
		CutoffHigh: 42, CutoffMid: 39, CutoffLow: 36,
	},
	{
		ID: "clinical-medicine-dip", Name: "Diploma in Clinical Medicine", Level: LevelDiploma,
		Category: "Medical & Health Sciences",
		Cluster:  [4]string{"biology", "chemistry", "english", "maths"},
		CutoffHigh: 36, CutoffMid: 33, CutoffLow: 30,
	},
	{
		ID: "community-health-cert", Name: "Certificate in Community Health", Level: LevelCertificate,
		Category: "Medical & Health Sciences",
		Cluster:  [4]string{"biology", "english", "kiswahili", "homescience"},
		CutoffHigh: 28, CutoffMid: 25, CutoffLow: 22,
	},

	// Engineering & Technology
	{
		ID: "civil-eng", Name: "Bachelor of Civil Engineering", Level: LevelDegree,
		Category: "Engineering & Technology",
		Cluster:  [4]string{"maths", "physics", "chemistry", "english"},
		CutoffHigh: 44, CutoffMid: 42, CutoffLow: 39,
	},
	{
		ID: "electrical-eng", Name: "Bachelor of Electrical & Electronic Engineering", Level: LevelDegree,
		Category: "Engineering & Technology",
		Cluster:  [4]string{"maths", "physics", "chemistry", "english"},
		CutoffHigh: 44, CutoffMid: 42, CutoffLow: 40,
	},
	{
		ID: "mechanical-eng", Name: "Bachelor of Mechanical Engineering", Level: LevelDegree,
		Category: "Engineering & Technology",
		Cluster:  [4]string{"maths", "physics", "chemistry", "english"},
		CutoffHigh: 43, CutoffMid: 41, CutoffLow: 39,
	},
	{
		ID: "electrical-eng-dip", Name: "Diploma in Electrical Engineering", Level: LevelDiploma,
		Category: "Engineering & Technology",
		Cluster:  [4]string{"maths", "physics", "english", "computer"},
		CutoffHigh: 34, CutoffMid: 31, CutoffLow: 28,
	},
	{
		ID: "welding-artisan", Name: "Artisan in Welding & Fabrication", Level: LevelArtisan,
		Category: "Engineering & Technology",
		Cluster:  [4]string{"maths", "physics", "english", "kiswahili"},
		CutoffHigh: 20, CutoffMid: 17, CutoffLow: 14,
	},

	// Computing & IT
	{
		ID: "computer-science", Name: "Bachelor of Computer Science", Level: LevelDegree,
		Category: "Computing & IT",
		Cluster:  [4]string{"maths", "physics", "english", "computer"},
		CutoffHigh: 42, CutoffMid: 40, CutoffLow: 37,
	},
	{
		ID: "it-degree", Name: "Bachelor of Information Technology", Level: LevelDegree,
		Category: "Computing & IT",
		Cluster:  [4]string{"maths", "english", "physics", "business"},
		CutoffHigh: 40, CutoffMid: 37, CutoffLow: 34,
	},
	{
		ID: "ict-dip", Name: "Diploma in Information Communication Technology", Level: LevelDiploma,
		Category: "Computing & IT",
		Cluster:  [4]string{"maths", "english", "computer", "physics"},
		CutoffHigh: 32, CutoffMid: 29, CutoffLow: 26,
	},
	{
		ID: "ict-cert", Name: "Certificate in Information Communication Technology", Level: LevelCertificate,
		Category: "Computing & IT",
		Cluster:  [4]string{"maths", "english", "kiswahili", "computer"},
		CutoffHigh: 26, CutoffMid: 23, CutoffLow: 20,
	},

	// Business & Economics
	{
		ID: "commerce", Name: "Bachelor of Commerce", Level: LevelDegree,
		Category: "Business & Economics",
		Cluster:  [4]string{"maths", "english", "business", "kiswahili"},
		CutoffHigh: 41, CutoffMid: 38, CutoffLow: 35,
	},
	{
		ID: "economics", Name: "Bachelor of Economics & Statistics", Level: LevelDegree,
		Category: "Business & Economics",
		Cluster:  [4]string{"maths", "english", "business", "geography"},
		CutoffHigh: 42, CutoffMid: 39, CutoffLow: 36,
	},
	{
		ID: "accountancy-dip", Name: "Diploma in Accountancy", Level: LevelDiploma,
		Category: "Business & Economics",
		Cluster:  [4]string{"maths", "english", "business", "kiswahili"},
		CutoffHigh: 33, CutoffMid: 30, CutoffLow: 27,
	},
	{
		ID: "business-mgmt-cert", Name: "Certificate in Business Management", Level: LevelCertificate,
		Category: "Business & Economics",
		Cluster:  [4]string{"english", "kiswahili", "maths", "business"},
		CutoffHigh: 25, CutoffMid: 22, CutoffLow: 19,
	},

	// Education
	{
		ID: "education-science", Name: "Bachelor of Education (Science)", Level: LevelDegree,
		Category: "Education",
		Cluster:  [4]string{"maths", "biology", "chemistry", "english"},
		CutoffHigh: 40, CutoffMid: 37, CutoffLow: 34,
	},
	{
		ID: "education-arts", Name: "Bachelor of Education (Arts)", Level: LevelDegree,
		Category: "Education",
		Cluster:  [4]string{"english", "kiswahili", "history", "cre"},
		CutoffHigh: 39, CutoffMid: 36, CutoffLow: 33,
	},
	{
		ID: "ecde-dip", Name: "Diploma in Early Childhood Development Education", Level: LevelDiploma,
		Category: "Education",
		Cluster:  [4]string{"english", "kiswahili", "maths", "cre"},
		CutoffHigh: 30, CutoffMid: 27, CutoffLow: 24,
	},

	// Agriculture & Environment
	{
		ID: "agriculture-degree", Name: "Bachelor of Science in Agriculture", Level: LevelDegree,
		Category: "Agriculture & Environment",
		Cluster:  [4]string{"biology", "chemistry", "agriculture", "maths"},
		CutoffHigh: 39, CutoffMid: 36, CutoffLow: 33,
	},
	{
		ID: "environmental-science", Name: "Bachelor of Environmental Science", Level: LevelDegree,
		Category: "Agriculture & Environment",
		Cluster:  [4]string{"biology", "geography", "chemistry", "english"},
		CutoffHigh: 38, CutoffMid: 35, CutoffLow: 32,
	},
	{
		ID: "animal-health-dip", Name: "Diploma in Animal Health & Production", Level: LevelDiploma,
		Category: "Agriculture & Environment",
		Cluster:  [4]string{"biology", "chemistry", "agriculture", "english"},
		CutoffHigh: 31, CutoffMid: 28, CutoffLow: 25,
	},
	{
		ID: "horticulture-cert", Name: "Certificate in Horticulture", Level: LevelCertificate,
		Category: "Agriculture & Environment",
		Cluster:  [4]string{"biology", "agriculture", "kiswahili", "english"},
		CutoffHigh: 24, CutoffMid: 21, CutoffLow: 18,
	},

	// Social Sciences & Humanities
	{
		ID: "law", Name: "Bachelor of Laws", Level: LevelDegree,
		Category: "Social Sciences & Humanities",
		Cluster:  [4]string{"english", "kiswahili", "history", "maths"},
		CutoffHigh: 43, CutoffMid: 41, CutoffLow: 38,
	},
	{
		ID: "journalism", Name: "Bachelor of Journalism & Mass Communication", Level: LevelDegree,
		Category: "Social Sciences & Humanities",
		Cluster:  [4]string{"english", "kiswahili", "history", "business"},
		CutoffHigh: 39, CutoffMid: 36, CutoffLow: 33,
	},
	{
		ID: "social-work-dip", Name: "Diploma in Social Work & Community Development", Level: LevelDiploma,
		Category: "Social Sciences & Humanities",
		Cluster:  [4]string{"english", "kiswahili", "cre", "history"},
		CutoffHigh: 29, CutoffMid: 26, CutoffLow: 23,
	},

	// Built Environment
	{
		ID: "architecture", Name: "Bachelor of Architecture", Level: LevelDegree,
		Category: "Built Environment",
		Cluster:  [4]string{"maths", "physics", "english", "geography"},
		CutoffHigh: 43, CutoffMid: 41, CutoffLow: 38,
	},
	{
		ID: "quantity-survey", Name: "Bachelor of Quantity Surveying", Level: LevelDegree,
		Category: "Built Environment",
		Cluster:  [4]string{"maths", "physics", "english", "business"},
		CutoffHigh: 40, CutoffMid: 37, CutoffLow: 34,
	},
	{
		ID: "building-tech-cert", Name: "Certificate in Building Technology", Level: LevelCertificate,
		Category: "Built Environment",
		Cluster:  [4]string{"maths", "physics", "english", "kiswahili"},
		CutoffHigh: 23, CutoffMid: 20, CutoffLow: 17,
	},

	// Hospitality & Tourism
	{
		ID: "hospitality-degree", Name: "Bachelor of Hospitality Management", Level: LevelDegree,
		Category: "Hospitality & Tourism",
		Cluster:  [4]string{"english", "kiswahili", "business", "homescience"},
		CutoffHigh: 37, CutoffMid: 34, CutoffLow: 31,
	},
	{
		ID: "catering-dip", Name: "Diploma in Catering & Accommodation", Level: LevelDiploma,
		Category: "Hospitality & Tourism",
		Cluster:  [4]string{"english", "kiswahili", "homescience", "business"},
		CutoffHigh: 28, CutoffMid: 25, CutoffLow: 22,
	},
	{
		ID: "food-prod-artisan", Name: "Artisan in Food Production", Level: LevelArtisan,
		Category: "Hospitality & Tourism",
		Cluster:  [4]string{"english", "kiswahili", "homescience", "maths"},
		CutoffHigh: 19, CutoffMid: 16, CutoffLow: 13,
	},
}

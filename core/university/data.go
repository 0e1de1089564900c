package university

// DefaultCatalog is the built-in university listing, validated at init.
var DefaultCatalog = MustNewCatalog(defaultUniversities)

var defaultUniversities = []University{
	{ID: "uon", Name: "University of Nairobi", Town: "Nairobi", Kind: KindPublic, Website: "https://www.uonbi.ac.ke"},
	{ID: "ku", Name: "Kenyatta University", Town: "Nairobi", Kind: KindPublic, Website: "https://www.ku.ac.ke"},
	{ID: "jkuat", Name: "Jomo Kenyatta University of Agriculture & Technology", Town: "Juja", Kind: KindPublic, Website: "https://www.jkuat.ac.ke"},
	{ID: "moi", Name: "Moi University", Town: "Eldoret", Kind: KindPublic, Website: "https://www.mu.ac.ke"},
	{ID: "egerton", Name: "Egerton University", Town: "Njoro", Kind: KindPublic, Website: "https://www.egerton.ac.ke"},
	{ID: "maseno", Name: "Maseno University", Town: "Maseno", Kind: KindPublic, Website: "https://www.maseno.ac.ke"},
	{ID: "tuk", Name: "Technical University of Kenya", Town: "Nairobi", Kind: KindPublic, Website: "https://www.tukenya.ac.ke"},
	{ID: "pwani", Name: "Pwani University", Town: "Kilifi", Kind: KindPublic, Website: "https://www.pu.ac.ke"},
	{ID: "strathmore", Name: "Strathmore University", Town: "Nairobi", Kind: KindPrivate, Website: "https://www.strathmore.edu"},
	{ID: "usiu", Name: "United States International University Africa", Town: "Nairobi", Kind: KindPrivate, Website: "https://www.usiu.ac.ke"},
	{ID: "daystar", Name: "Daystar University", Town: "Athi River", Kind: KindPrivate, Website: "https://www.daystar.ac.ke"},
	{ID: "cuea", Name: "Catholic University of Eastern Africa", Town: "Nairobi", Kind: KindPrivate, Website: "https://www.cuea.edu"},
}

package mentor

// DefaultDirectory is the built-in mentor listing, validated at init.
var DefaultDirectory = MustNewDirectory(defaultMentors)

var defaultMentors = []Mentor{
	{
		ID: "njeri-kamau", Name: "Dr. Njeri Kamau", Title: "Consultant Paediatrician",
		Field: "Medicine", County: "Nairobi", Email: "njeri.kamau@elimika.example",
		Bio: "15 years in public and private paediatric practice; mentors pre-med students.",
	},
	{
		ID: "otieno-owuor", Name: "Eng. Otieno Owuor", Title: "Structural Engineer",
		Field: "Engineering", County: "Kisumu", Email: "otieno.owuor@elimika.example",
		Bio: "Registered engineer working on county infrastructure projects.",
	},
	{
		ID: "wanjiku-maina", Name: "Wanjiku Maina", Title: "Software Engineer",
		Field: "Technology", County: "Nairobi", Email: "wanjiku.maina@elimika.example",
		Bio: "Backend engineer at a Nairobi fintech; runs weekend coding clinics.",
	},
	{
		ID: "kipchoge-rotich", Name: "CPA Kipchoge Rotich", Title: "Audit Manager",
		Field: "Finance", County: "Uasin Gishu", Email: "kipchoge.rotich@elimika.example",
		Bio: "Certified accountant mentoring students toward CPA and commerce degrees.",
	},
	{
		ID: "amina-hassan", Name: "Amina Hassan", Title: "Advocate of the High Court",
		Field: "Law", County: "Mombasa", Email: "amina.hassan@elimika.example",
		Bio: "Practising advocate; guides students through law school admission.",
	},
	{
		ID: "mutua-musyoka", Name: "Mutua Musyoka", Title: "Agronomist",
		Field: "Agriculture", County: "Machakos", Email: "mutua.musyoka@elimika.example",
		Bio: "Field agronomist supporting smallholder farmers in the lower eastern region.",
	},
	{
		ID: "achieng-odhiambo", Name: "Achieng Odhiambo", Title: "Senior Nurse",
		Field: "Medicine", County: "Siaya", Email: "achieng.odhiambo@elimika.example",
		Bio: "Critical-care nurse; mentors students pursuing nursing and clinical medicine.",
	},
	{
		ID: "baraka-mwangi", Name: "Baraka Mwangi", Title: "Secondary School Principal",
		Field: "Education", County: "Nyeri", Email: "baraka.mwangi@elimika.example",
		Bio: "Career teacher and principal; advises on teaching-college placement.",
	},
}

package taxonomy

import (
	"slices"
	"strings"
)

// CareerPath lists the careers and preparation areas for majors whose names
// contain one of NameTerms.
type CareerPath struct {
	NameTerms    []string
	Careers      []string
	DevelopAreas []string
}

// GenericCareers is returned when no career path matches a major name.
var GenericCareers = []string{"Various Career Opportunities"}

// GenericDevelopAreas is returned when no career path matches a major name.
var GenericDevelopAreas = []string{
	"Explore the prerequisite subjects of this major",
	"Join extracurricular activities related to your interests",
	"Take introductory online courses",
}

// CareerPaths is ordered from specific to general: the first match wins.
var CareerPaths = []CareerPath{
	{
		NameTerms:    []string{"informatika", "informatics", "computer", "komputer", "sistem informasi", "software"},
		Careers:      []string{"Software Engineer", "Data Scientist", "Web Developer"},
		DevelopAreas: []string{"Mathematics and logical reasoning", "Basic programming", "Algorithms and data structures"},
	},
	{
		NameTerms:    []string{"arsitektur", "architecture"},
		Careers:      []string{"Arsitek", "Perencana Kota", "Desainer Interior"},
		DevelopAreas: []string{"Freehand and technical drawing", "Geometry and physics fundamentals", "3D modelling software"},
	},
	{
		NameTerms:    []string{"elektro", "electrical", "telekomunikasi", "telecommunication"},
		Careers:      []string{"Insinyur Elektro", "Engineer Telekomunikasi", "Engineer Sistem Tenaga"},
		DevelopAreas: []string{"Physics of electricity and magnetism", "Mathematics and calculus", "Basic electronics projects"},
	},
	{
		NameTerms:    []string{"mesin", "mechanical", "otomotif", "automotive"},
		Careers:      []string{"Insinyur Mesin", "Engineer Manufaktur", "Engineer Otomotif"},
		DevelopAreas: []string{"Mechanics and physics", "Mathematics and calculus", "Technical drawing"},
	},
	{
		NameTerms:    []string{"teknik", "engineering"},
		Careers:      []string{"Insinyur", "Project Engineer", "Konsultan Teknik"},
		DevelopAreas: []string{"Mathematics and logical reasoning", "Physics fundamentals", "Problem solving practice"},
	},
	{
		NameTerms:    []string{"kedokteran", "medicine", "medical"},
		Careers:      []string{"Dokter Umum", "Dokter Spesialis", "Peneliti Medis"},
		DevelopAreas: []string{"Biology and chemistry", "Laboratory practice", "Empathy and patient communication"},
	},
	{
		NameTerms:    []string{"farmasi", "pharmacy"},
		Careers:      []string{"Apoteker", "Peneliti Farmasi", "Quality Control Obat"},
		DevelopAreas: []string{"Chemistry and biology", "Laboratory precision", "Knowledge of medicines and regulation"},
	},
	{
		NameTerms:    []string{"keperawatan", "nursing", "gizi", "nutrition", "kesehatan", "health"},
		Careers:      []string{"Perawat", "Ahli Gizi", "Tenaga Kesehatan Masyarakat"},
		DevelopAreas: []string{"Biology and health science", "First aid training", "Empathy and patient communication"},
	},
	{
		NameTerms:    []string{"desain", "design", "seni", "arts", "fine art", "film", "musik", "music", "animasi", "animation"},
		Careers:      []string{"Desainer Grafis", "Ilustrator", "Art Director"},
		DevelopAreas: []string{"Drawing and sketching", "Digital design tools", "Building a portfolio"},
	},
	{
		NameTerms:    []string{"komunikasi", "communication", "jurnalistik", "journalism"},
		Careers:      []string{"Jurnalis", "Public Relations", "Content Strategist"},
		DevelopAreas: []string{"Writing and storytelling", "Public speaking", "Media and social media literacy"},
	},
	{
		NameTerms:    []string{"psikologi", "psychology"},
		Careers:      []string{"Psikolog Klinis", "HR Specialist", "Konselor"},
		DevelopAreas: []string{"Biology and statistics", "Active listening", "Volunteering in the community"},
	},
	{
		NameTerms:    []string{"akuntansi", "accounting", "keuangan", "finance"},
		Careers:      []string{"Akuntan", "Auditor", "Analis Keuangan"},
		DevelopAreas: []string{"Basic accounting", "Spreadsheet skills", "Attention to detail"},
	},
	{
		NameTerms:    []string{"manajemen", "management", "bisnis", "business"},
		Careers:      []string{"Manajer Perusahaan", "Entrepreneur", "Konsultan Bisnis"},
		DevelopAreas: []string{"Leadership in organizations", "Basic accounting", "Quantitative reasoning"},
	},
	{
		NameTerms:    []string{"ekonomi", "economics"},
		Careers:      []string{"Ekonom", "Analis Kebijakan", "Peneliti Ekonomi"},
		DevelopAreas: []string{"Economics fundamentals", "Statistics", "Reading economic news"},
	},
	{
		NameTerms:    []string{"hukum", "law"},
		Careers:      []string{"Advokat", "Notaris", "Konsultan Hukum"},
		DevelopAreas: []string{"Debate and argumentation", "Reading comprehension", "Civics and constitution"},
	},
	{
		NameTerms:    []string{"hubungan internasional", "international relations", "politik", "politics", "sosiologi", "sociology"},
		Careers:      []string{"Diplomat", "Analis Politik", "Staf Organisasi Internasional"},
		DevelopAreas: []string{"Foreign language proficiency", "Current affairs", "Debate and argumentation"},
	},
	{
		NameTerms:    []string{"penerjemahan", "translation"},
		Careers:      []string{"Penerjemah", "Juru Bahasa", "Editor"},
		DevelopAreas: []string{"Foreign language proficiency", "Reading and writing practice", "Cross-cultural knowledge"},
	},
	{
		NameTerms:    []string{"sastra", "literature", "bahasa", "language", "linguistik", "linguistics", "sejarah", "history"},
		Careers:      []string{"Penulis", "Editor", "Peneliti Bahasa"},
		DevelopAreas: []string{"Reading and writing practice", "Foreign language proficiency", "Literary analysis"},
	},
	{
		NameTerms:    []string{"biologi", "biology", "kimia", "chemistry", "fisika", "physics", "matematika", "mathematics", "statistika", "statistics", "sains", "science"},
		Careers:      []string{"Peneliti", "Analis Laboratorium", "Dosen"},
		DevelopAreas: []string{"Scientific method", "Statistics", "Academic writing"},
	},
}

// CareerPathFor returns the first career path matching majorName.
func CareerPathFor(majorName string) (CareerPath, bool) {
	tokens := Tokenize(majorName)
	lower := strings.ToLower(majorName)

	for _, path := range CareerPaths {
		for _, term := range path.NameTerms {
			if containsTerm(lower, tokens, term) {
				return path, true
			}
		}
	}
	return CareerPath{}, false
}

// Careers returns a copy of the career list for majorName.
func Careers(majorName string) []string {
	if path, ok := CareerPathFor(majorName); ok {
		return slices.Clone(path.Careers)
	}
	return slices.Clone(GenericCareers)
}

// DevelopAreas returns a copy of the preparation areas for majorName.
func DevelopAreas(majorName string) []string {
	if path, ok := CareerPathFor(majorName); ok {
		return slices.Clone(path.DevelopAreas)
	}
	return slices.Clone(GenericDevelopAreas)
}

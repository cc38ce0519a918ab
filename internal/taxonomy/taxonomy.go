// Package taxonomy is the single discipline-family table used for major
// vectorization, essay bonuses and explanations, plus the career table.
package taxonomy

import (
	"strings"
	"unicode"

	"github.com/spigell/major-advisor/internal/vector"
)

// Family is a cluster of related majors sharing name rules and vocabulary.
type Family struct {
	Name string
	// NameTerms are matched against lower-cased major names.
	NameTerms []string
	// Priors are baseline affinities applied when the family matches a major
	// name. Zero components are left unset.
	Priors vector.Vector
	// Primary is the dimension Keywords feed when scanning description text.
	Primary vector.Dimension
	// Keywords are used both for description density and essay keywords.
	Keywords []string
}

// Families is ordered; Match reports families in this order.
var Families = []Family{
	{
		Name:      "engineering",
		NameTerms: []string{"teknik", "engineering", "informatika", "informatics", "computer", "komputer", "sistem informasi", "arsitektur", "architecture"},
		Priors:    vector.Vector{vector.LogicMath: 0.9, vector.Science: 0.7},
		Primary:   vector.LogicMath,
		Keywords: []string{
			"mathematics", "matematika", "calculation", "perhitungan", "kalkulus", "algorithm", "algoritma",
			"computation", "komputasi", "logic", "logika", "programming", "pemrograman", "coding",
			"software", "komputer", "teknologi", "technology", "engineering", "rekayasa",
		},
	},
	{
		Name:      "humanities",
		NameTerms: []string{"sastra", "literature", "bahasa", "language", "sejarah", "history", "linguistik", "linguistics", "penerjemahan", "translation"},
		Priors:    vector.Vector{vector.Verbal: 0.9, vector.Social: 0.5},
		Primary:   vector.Verbal,
		Keywords: []string{
			"language", "bahasa", "literature", "kesusastraan", "linguistik", "linguistics", "communication",
			"journalism", "jurnalistik", "menulis", "writing", "membaca", "reading", "puisi", "novel", "terjemahan",
		},
	},
	{
		Name:      "arts",
		NameTerms: []string{"desain", "design", "seni", "arts", "fine art", "arsitektur", "architecture", "film", "musik", "music", "animasi", "animation"},
		Priors:    vector.Vector{vector.Art: 0.9, vector.Verbal: 0.4},
		Primary:   vector.Art,
		Keywords: []string{
			"art", "seni", "design", "desain", "aesthetics", "estetika", "creative", "kreatif", "kreativitas",
			"visual", "gambar", "menggambar", "drawing", "ilustrasi", "illustration", "musik", "music",
		},
	},
	{
		Name:      "health",
		NameTerms: []string{"kedokteran", "medicine", "medical", "kesehatan", "health", "farmasi", "pharmacy", "keperawatan", "nursing", "gizi", "nutrition"},
		Priors:    vector.Vector{vector.Science: 0.9, vector.Social: 0.6},
		Primary:   vector.Science,
		Keywords: []string{
			"physics", "fisika", "chemistry", "kimia", "biology", "biologi", "laboratory", "laboratorium",
			"medical", "medis", "health", "kesehatan", "penelitian", "research", "eksperimen", "experiment",
			"sains", "science", "ilmiah", "obat", "pasien",
		},
	},
	{
		Name:      "business",
		NameTerms: []string{"ekonomi", "economics", "manajemen", "management", "akuntansi", "accounting", "bisnis", "business", "keuangan", "finance"},
		Priors:    vector.Vector{vector.Social: 0.7, vector.LogicMath: 0.6},
		Primary:   vector.Social,
		Keywords: []string{
			"management", "manajemen", "business", "bisnis", "economy", "ekonomi", "finance", "keuangan",
			"accounting", "akuntansi", "entrepreneur", "wirausaha", "marketing", "pemasaran", "organisasi",
		},
	},
	{
		Name:      "social",
		NameTerms: []string{"hukum", "law", "politik", "politics", "psikologi", "psychology", "sosiologi", "sociology", "komunikasi", "communication", "hubungan internasional", "international relations"},
		Priors:    vector.Vector{vector.Social: 0.8, vector.Verbal: 0.7},
		Primary:   vector.Social,
		Keywords: []string{
			"society", "masyarakat", "sosial", "social", "law", "hukum", "politics", "politik",
			"psychology", "psikologi", "membantu", "helping", "komunitas", "community", "kepemimpinan", "leadership",
			"diplomasi", "diplomacy", "hubungan internasional",
		},
	},
	{
		Name:      "science",
		NameTerms: []string{"biologi", "biology", "kimia", "chemistry", "fisika", "physics", "matematika", "mathematics", "statistika", "statistics", "sains", "science"},
		Priors:    vector.Vector{vector.Science: 0.8, vector.LogicMath: 0.7},
		Primary:   vector.Science,
		Keywords: []string{
			"experiment", "eksperimen", "observasi", "observation", "hipotesis", "hypothesis", "statistik", "statistics",
		},
	},
}

// Match returns the families whose name terms occur in majorName, in table order.
func Match(majorName string) []Family {
	tokens := Tokenize(majorName)
	lower := strings.ToLower(majorName)

	var matched []Family
	for _, family := range Families {
		for _, term := range family.NameTerms {
			if containsTerm(lower, tokens, term) {
				matched = append(matched, family)
				break
			}
		}
	}
	return matched
}

// Priors merges the priors of every family matching majorName, keeping the
// highest baseline per dimension.
func Priors(majorName string) vector.Vector {
	var out vector.Vector
	for _, family := range Match(majorName) {
		for _, d := range vector.Dimensions {
			if family.Priors[d] > out[d] {
				out[d] = family.Priors[d]
			}
		}
	}
	return out
}

// KeywordsFor returns the de-duplicated keyword list feeding dimension d.
func KeywordsFor(d vector.Dimension) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, family := range Families {
		if family.Primary != d {
			continue
		}
		for _, kw := range family.Keywords {
			if _, ok := seen[kw]; ok {
				continue
			}
			seen[kw] = struct{}{}
			out = append(out, kw)
		}
	}
	return out
}

// Vocabulary returns every keyword known to the taxonomy.
func Vocabulary() map[string]struct{} {
	vocab := make(map[string]struct{})
	for _, family := range Families {
		for _, kw := range family.Keywords {
			vocab[kw] = struct{}{}
		}
	}
	return vocab
}

// HasKeyword reports whether any of keywords belongs to the family vocabulary.
func (f Family) HasKeyword(keywords []string) bool {
	for _, candidate := range keywords {
		candidate = strings.ToLower(strings.TrimSpace(candidate))
		for _, kw := range f.Keywords {
			if candidate == kw {
				return true
			}
		}
	}
	return false
}

// Tokenize splits text into lower-cased words.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// containsTerm reports whether term occurs in text. Single words must match
// a whole token; phrases are matched as substrings.
func containsTerm(lower string, tokens []string, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return false
	}
	if strings.Contains(term, " ") {
		return strings.Contains(lower, term)
	}
	for _, token := range tokens {
		if token == term {
			return true
		}
	}
	return false
}

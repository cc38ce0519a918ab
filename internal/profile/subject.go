package profile

import (
	"fmt"
	"strings"
)

// Subject identifies an academic subject on the report card.
type Subject int

const (
	MathCore Subject = iota + 1
	MathElective
	NativeLanguage
	ForeignLanguage
	Physics
	Chemistry
	Biology
	Economics
	Sociology
	Geography
	HistoryElective
	LiteratureNative
	LiteratureForeign
	Anthropology
)

var subjectLabels = map[Subject]string{
	MathCore:          "Matematika (Wajib)",
	MathElective:      "Matematika (Peminatan)",
	NativeLanguage:    "Bahasa Indonesia",
	ForeignLanguage:   "Bahasa Inggris",
	Physics:           "Fisika",
	Chemistry:         "Kimia",
	Biology:           "Biologi",
	Economics:         "Ekonomi",
	Sociology:         "Sosiologi",
	Geography:         "Geografi",
	HistoryElective:   "Sejarah (Peminatan)",
	LiteratureNative:  "Sastra Indonesia",
	LiteratureForeign: "Sastra Inggris",
	Anthropology:      "Antropologi",
}

var subjectAliases = map[string]Subject{
	"matematika": MathCore,
	"math":       MathCore,
	"sejarah":    HistoryElective,
	"sastra":     LiteratureNative,
	"physics":    Physics,
	"chemistry":  Chemistry,
	"biology":    Biology,
	"economics":  Economics,
	"sociology":  Sociology,
	"geography":  Geography,
}

// Label is the report-card label of the subject.
func (s Subject) Label() string {
	if label, ok := subjectLabels[s]; ok {
		return label
	}
	return fmt.Sprintf("Subject(%d)", int(s))
}

func (s Subject) String() string { return s.Label() }

// ParseSubject resolves a report-card label or a known alias, case-insensitively.
func ParseSubject(label string) (Subject, error) {
	key := strings.ToLower(strings.TrimSpace(label))
	for subject, l := range subjectLabels {
		if strings.ToLower(l) == key {
			return subject, nil
		}
	}
	if subject, ok := subjectAliases[key]; ok {
		return subject, nil
	}
	return 0, fmt.Errorf("unknown subject %q", label)
}

// Package profile models a student's questionnaire answers and turns them into
// a user affinity vector.
package profile

import (
	"fmt"
	"strings"
)

// Stream is the high-school specialisation that decides which subjects are collected.
type Stream string

const (
	StreamScience       Stream = "science"
	StreamSocialStudies Stream = "social-studies"
	StreamLanguage      Stream = "language"
)

// ParseStream accepts both English names and the Indonesian labels (IPA, IPS, Bahasa).
func ParseStream(s string) (Stream, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "science", "ipa", "mipa":
		return StreamScience, nil
	case "social-studies", "socialstudies", "social", "ips":
		return StreamSocialStudies, nil
	case "language", "bahasa":
		return StreamLanguage, nil
	default:
		return "", fmt.Errorf("unknown stream %q", s)
	}
}

// Label returns the Indonesian stream label shown to students.
func (s Stream) Label() string {
	switch s {
	case StreamScience:
		return "IPA"
	case StreamSocialStudies:
		return "IPS"
	case StreamLanguage:
		return "Bahasa"
	default:
		return string(s)
	}
}

// CoreScores are collected for every stream.
type CoreScores struct {
	MathCore        int
	NativeLanguage  int
	ForeignLanguage int
}

type ScienceScores struct {
	MathElective int
	Physics      int
	Chemistry    int
	Biology      int
}

type SocialScores struct {
	Economics       int
	Sociology       int
	Geography       int
	HistoryElective int
}

type LanguageScores struct {
	LiteratureNative  int
	LiteratureForeign int
	Anthropology      int
	HistoryElective   int
}

// Interests are ratings in [1,5]; zero means not answered.
type Interests struct {
	AnalysisProblemSolving int
	CreativityArt          int
	CommunicationSocial    int
	TechnologyProgramming  int
}

// Competencies are self-assessed ratings in [1,5]; zero means not answered.
type Competencies struct {
	Communication int
	Creativity    int
	Leadership    int
}

// Profile is one student's answers. Only the score group matching Stream is
// read; the others are ignored even if populated.
type Profile struct {
	Name   string
	Stream Stream

	Core     CoreScores
	Science  ScienceScores
	Social   SocialScores
	Language LanguageScores

	Interests    Interests
	Competencies Competencies

	Essay string
}

// Score returns the score for subject as seen by the active stream. Subjects
// the stream does not collect report (0, false).
func (p *Profile) Score(s Subject) (int, bool) {
	if p == nil {
		return 0, false
	}

	switch s {
	case MathCore:
		return p.Core.MathCore, true
	case NativeLanguage:
		return p.Core.NativeLanguage, true
	case ForeignLanguage:
		return p.Core.ForeignLanguage, true
	}

	switch p.Stream {
	case StreamScience:
		switch s {
		case MathElective:
			return p.Science.MathElective, true
		case Physics:
			return p.Science.Physics, true
		case Chemistry:
			return p.Science.Chemistry, true
		case Biology:
			return p.Science.Biology, true
		}
	case StreamSocialStudies:
		switch s {
		case Economics:
			return p.Social.Economics, true
		case Sociology:
			return p.Social.Sociology, true
		case Geography:
			return p.Social.Geography, true
		case HistoryElective:
			return p.Social.HistoryElective, true
		}
	case StreamLanguage:
		switch s {
		case LiteratureNative:
			return p.Language.LiteratureNative, true
		case LiteratureForeign:
			return p.Language.LiteratureForeign, true
		case Anthropology:
			return p.Language.Anthropology, true
		case HistoryElective:
			return p.Language.HistoryElective, true
		}
	}

	return 0, false
}

// SetScore stores value for subject. It reports false when the active stream
// does not collect the subject.
func (p *Profile) SetScore(s Subject, value int) bool {
	if _, ok := p.Score(s); !ok {
		return false
	}

	switch s {
	case MathCore:
		p.Core.MathCore = value
	case NativeLanguage:
		p.Core.NativeLanguage = value
	case ForeignLanguage:
		p.Core.ForeignLanguage = value
	case MathElective:
		p.Science.MathElective = value
	case Physics:
		p.Science.Physics = value
	case Chemistry:
		p.Science.Chemistry = value
	case Biology:
		p.Science.Biology = value
	case Economics:
		p.Social.Economics = value
	case Sociology:
		p.Social.Sociology = value
	case Geography:
		p.Social.Geography = value
	case LiteratureNative:
		p.Language.LiteratureNative = value
	case LiteratureForeign:
		p.Language.LiteratureForeign = value
	case Anthropology:
		p.Language.Anthropology = value
	case HistoryElective:
		if p.Stream == StreamLanguage {
			p.Language.HistoryElective = value
		} else {
			p.Social.HistoryElective = value
		}
	}
	return true
}

// Subjects returns the subjects collected for the stream, in form order.
func (s Stream) Subjects() []Subject {
	subjects := []Subject{MathCore, NativeLanguage, ForeignLanguage}
	switch s {
	case StreamScience:
		subjects = append(subjects, MathElective, Physics, Chemistry, Biology)
	case StreamSocialStudies:
		subjects = append(subjects, Economics, Sociology, Geography, HistoryElective)
	case StreamLanguage:
		subjects = append(subjects, LiteratureNative, LiteratureForeign, Anthropology, HistoryElective)
	}
	return subjects
}

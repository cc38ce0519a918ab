package profile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
)

type document struct {
	Name         string         `mapstructure:"name"`
	Stream       string         `mapstructure:"stream"`
	Scores       map[string]int `mapstructure:"scores"`
	Interests    map[string]int `mapstructure:"interests"`
	Competencies map[string]int `mapstructure:"competencies"`
	Essay        string         `mapstructure:"essay"`
}

var interestKeys = map[string]func(*Interests) *int{
	"analysis":                     func(i *Interests) *int { return &i.AnalysisProblemSolving },
	"analysis-problem-solving":     func(i *Interests) *int { return &i.AnalysisProblemSolving },
	"analisis dan problem solving": func(i *Interests) *int { return &i.AnalysisProblemSolving },
	"creativity":                   func(i *Interests) *int { return &i.CreativityArt },
	"creativity-art":               func(i *Interests) *int { return &i.CreativityArt },
	"kreativitas dan seni":         func(i *Interests) *int { return &i.CreativityArt },
	"communication":                func(i *Interests) *int { return &i.CommunicationSocial },
	"communication-social":         func(i *Interests) *int { return &i.CommunicationSocial },
	"komunikasi dan sosial":        func(i *Interests) *int { return &i.CommunicationSocial },
	"technology":                   func(i *Interests) *int { return &i.TechnologyProgramming },
	"technology-programming":       func(i *Interests) *int { return &i.TechnologyProgramming },
	"teknologi dan programming":    func(i *Interests) *int { return &i.TechnologyProgramming },
}

var competencyKeys = map[string]func(*Competencies) *int{
	"communication": func(c *Competencies) *int { return &c.Communication },
	"komunikasi":    func(c *Competencies) *int { return &c.Communication },
	"creativity":    func(c *Competencies) *int { return &c.Creativity },
	"kreativitas":   func(c *Competencies) *int { return &c.Creativity },
	"leadership":    func(c *Competencies) *int { return &c.Leadership },
	"kepemimpinan":  func(c *Competencies) *int { return &c.Leadership },
}

// Decode builds a Profile from a loosely typed document such as a parsed YAML
// file. Scores for subjects the stream does not collect are skipped and their
// labels returned so the caller can report them.
func Decode(input map[string]any) (*Profile, []string, error) {
	var doc document
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &doc,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create decoder: %w", err)
	}
	if err := decoder.Decode(input); err != nil {
		return nil, nil, fmt.Errorf("decode profile: %w", err)
	}

	stream, err := ParseStream(doc.Stream)
	if err != nil {
		return nil, nil, err
	}

	p := &Profile{
		Name:   strings.TrimSpace(doc.Name),
		Stream: stream,
		Essay:  strings.TrimSpace(doc.Essay),
	}

	var skipped []string
	for label, value := range doc.Scores {
		subject, err := ParseSubject(label)
		if err != nil {
			return nil, nil, err
		}
		if !p.SetScore(subject, value) {
			skipped = append(skipped, subject.Label())
		}
	}

	for key, value := range doc.Interests {
		field, ok := interestKeys[strings.ToLower(strings.TrimSpace(key))]
		if !ok {
			return nil, nil, fmt.Errorf("unknown interest %q", key)
		}
		*field(&p.Interests) = value
	}

	for key, value := range doc.Competencies {
		field, ok := competencyKeys[strings.ToLower(strings.TrimSpace(key))]
		if !ok {
			return nil, nil, fmt.Errorf("unknown competency %q", key)
		}
		*field(&p.Competencies) = value
	}

	sort.Strings(skipped)
	return p, skipped, nil
}

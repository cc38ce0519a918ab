package profile

import (
	"errors"
	"fmt"
)

const (
	MaxScore  = 100
	MinRating = 1
	MaxRating = 5
)

// ErrMalformedScore is matched by every MalformedScoreError.
var ErrMalformedScore = errors.New("malformed score")

// MalformedScoreError reports a score or rating outside its declared bounds.
type MalformedScoreError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *MalformedScoreError) Error() string {
	return fmt.Sprintf("%s: value %d is outside [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

func (e *MalformedScoreError) Unwrap() error { return ErrMalformedScore }

// Validate checks the stream and every collected score and answered rating.
// Zero ratings are unanswered and therefore valid. All violations are joined.
func (p *Profile) Validate() error {
	if p == nil {
		return errors.New("profile is required")
	}

	if _, err := ParseStream(string(p.Stream)); err != nil {
		return err
	}

	var errs []error
	for _, subject := range p.Stream.Subjects() {
		value, _ := p.Score(subject)
		if value < 0 || value > MaxScore {
			errs = append(errs, &MalformedScoreError{Field: subject.Label(), Value: value, Min: 0, Max: MaxScore})
		}
	}

	ratings := []struct {
		field string
		value int
	}{
		{"interests.analysis-problem-solving", p.Interests.AnalysisProblemSolving},
		{"interests.creativity-art", p.Interests.CreativityArt},
		{"interests.communication-social", p.Interests.CommunicationSocial},
		{"interests.technology-programming", p.Interests.TechnologyProgramming},
		{"competencies.communication", p.Competencies.Communication},
		{"competencies.creativity", p.Competencies.Creativity},
		{"competencies.leadership", p.Competencies.Leadership},
	}
	for _, r := range ratings {
		if r.value == 0 {
			continue
		}
		if r.value < MinRating || r.value > MaxRating {
			errs = append(errs, &MalformedScoreError{Field: r.field, Value: r.value, Min: MinRating, Max: MaxRating})
		}
	}

	return errors.Join(errs...)
}

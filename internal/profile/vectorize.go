package profile

import (
	"math"

	"github.com/spigell/major-advisor/internal/vector"
)

// Vectorize maps a profile to its user vector. It never fails: anything not
// answered contributes zero and every component stays in [0, 1].
func Vectorize(p *Profile) vector.Vector {
	var v vector.Vector
	if p == nil {
		return v
	}

	score := func(s Subject) float64 {
		value, _ := p.Score(s)
		return float64(value)
	}

	mathCore := score(MathCore)
	mathElective := mathCore
	if value, ok := p.Score(MathElective); ok {
		mathElective = float64(value)
	}

	native := score(NativeLanguage)
	foreign := score(ForeignLanguage)
	history := score(HistoryElective)

	v[vector.LogicMath] = vector.Normalize(
		0.3*mathCore+0.3*mathElective+0.2*score(Physics)+0.2*score(Economics),
		MaxScore,
	)

	verbal := average(native, foreign, score(LiteratureNative), score(LiteratureForeign), history)
	if verbal == 0 {
		verbal = average(native, foreign)
	}
	v[vector.Verbal] = 0.6*vector.Normalize(verbal, MaxScore) +
		0.4*vector.Normalize(float64(p.Competencies.Communication), MaxRating)

	social := math.Max(math.Max(score(Sociology), score(Geography)), math.Max(history, 0.6*native))
	v[vector.Social] = 0.3*vector.Normalize(social, MaxScore) +
		0.4*vector.Normalize(float64(p.Interests.CommunicationSocial), MaxRating) +
		0.3*vector.Normalize(float64(p.Competencies.Leadership), MaxRating)

	v[vector.Art] = 0.6*vector.Normalize(float64(p.Interests.CreativityArt), MaxRating) +
		0.4*vector.Normalize(float64(p.Competencies.Creativity), MaxRating)

	v[vector.Science] = vector.Normalize(average(score(Physics), score(Chemistry), score(Biology)), MaxScore)

	for _, d := range vector.Dimensions {
		v[d] = vector.Clamp(v[d], 0, 1)
	}

	return v
}

func average(values ...float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, value := range values {
		sum += value
	}
	return sum / float64(len(values))
}

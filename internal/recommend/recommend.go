// Package recommend ranks catalog majors against a user affinity vector.
package recommend

import (
	"errors"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/spigell/major-advisor/internal/catalog"
	"github.com/spigell/major-advisor/internal/essay"
	"github.com/spigell/major-advisor/internal/logger"
	"github.com/spigell/major-advisor/internal/taxonomy"
	"github.com/spigell/major-advisor/internal/vector"
)

const (
	// DefaultTopK is the number of recommendations returned when none is configured.
	DefaultTopK = 3
	// StrongThreshold marks a dimension as a strong match when both vectors exceed it.
	StrongThreshold = 0.55
	// FamilyBonus is added per discipline family shared by the essay and the major name.
	FamilyBonus = 3.0
	// MaxEssayBonus caps the cumulative essay bonus.
	MaxEssayBonus = 10.0
	// MaxScore keeps scores below a perfect 100.
	MaxScore = 99.9
)

// ErrEmptyCatalog is returned when there is nothing to rank.
var ErrEmptyCatalog = errors.New("major catalog is empty")

// Recommendation is a ranked, explained major.
type Recommendation struct {
	Major        string   `json:"major"`
	Score        float64  `json:"score"`
	Similarity   float64  `json:"similarity"`
	EssayBonus   float64  `json:"essay_bonus"`
	Explanation  string   `json:"explanation"`
	Careers      []string `json:"careers"`
	DevelopAreas []string `json:"develop_areas"`
	Skills       []string `json:"skills,omitempty"`
	Prospects    string   `json:"prospects,omitempty"`

	StrongDimensions []vector.Dimension `json:"-"`
	EssayFamilies    []string           `json:"essay_families,omitempty"`
}

// Matcher scores majors with cosine similarity plus an essay bonus.
type Matcher struct {
	logger *zap.Logger
	topK   int
}

// NewMatcher returns a Matcher keeping the best topK results. topK <= 0 means DefaultTopK.
func NewMatcher(log *zap.Logger, topK int) *Matcher {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Matcher{logger: logger.WithFields(log), topK: topK}
}

// TopK returns the configured result count.
func (m *Matcher) TopK() int {
	return m.topK
}

// Recommend returns the topK majors by final score, descending. Equal scores
// keep catalog order. summary may be nil.
func (m *Matcher) Recommend(user vector.Vector, majors []catalog.MajorProfile, summary *essay.Summary) ([]Recommendation, error) {
	ranked, err := m.Rank(user, majors, summary)
	if err != nil {
		return nil, err
	}
	if len(ranked) > m.topK {
		ranked = ranked[:m.topK]
	}
	return ranked, nil
}

// Rank scores every major and returns all of them sorted.
func (m *Matcher) Rank(user vector.Vector, majors []catalog.MajorProfile, summary *essay.Summary) ([]Recommendation, error) {
	if len(majors) == 0 {
		return nil, ErrEmptyCatalog
	}

	if user.IsZero() {
		m.logger.Debug("user vector is zero, ranking by essay bonus only")
	}

	results := make([]Recommendation, 0, len(majors))
	for _, major := range majors {
		rec := m.score(user, major, summary)
		m.logger.Debug("scored major",
			zap.String(logger.FieldMajor, rec.Major),
			zap.Float64("similarity", rec.Similarity),
			zap.Float64("essay_bonus", rec.EssayBonus),
			zap.Float64("score", rec.Score),
		)
		results = append(results, rec)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results, nil
}

func (m *Matcher) score(user vector.Vector, major catalog.MajorProfile, summary *essay.Summary) Recommendation {
	similarity := vector.Cosine(user, major.Affinity)
	bonus, families := EssayBonus(major.Name, summary)
	strong := StrongDimensions(user, major.Affinity)

	final := similarity*100 + bonus
	final = math.Max(0, math.Min(final, MaxScore))

	var sentiment essay.Sentiment
	if summary != nil {
		sentiment = summary.Sentiment
	}

	return Recommendation{
		Major:            major.Name,
		Score:            final,
		Similarity:       similarity,
		EssayBonus:       bonus,
		Explanation:      Explain(strong, families, sentiment),
		Careers:          taxonomy.Careers(major.Name),
		DevelopAreas:     taxonomy.DevelopAreas(major.Name),
		Skills:           major.Skills,
		Prospects:        major.Prospects,
		StrongDimensions: strong,
		EssayFamilies:    families,
	}
}

// EssayBonus adds FamilyBonus for every discipline family matched by the major
// name whose keywords appear in the essay summary. The result never exceeds
// MaxEssayBonus. Families are returned in taxonomy order.
func EssayBonus(majorName string, summary *essay.Summary) (float64, []string) {
	if !summary.HasKeywords() {
		return 0, nil
	}

	var (
		bonus    float64
		families []string
	)
	for _, family := range taxonomy.Match(majorName) {
		if !family.HasKeyword(summary.Keywords) {
			continue
		}
		families = append(families, family.Name)
		bonus += FamilyBonus
	}

	return math.Min(bonus, MaxEssayBonus), families
}

// StrongDimensions returns the dimensions above StrongThreshold in both vectors.
func StrongDimensions(user, major vector.Vector) []vector.Dimension {
	var out []vector.Dimension
	for _, d := range vector.Dimensions {
		if user[d] > StrongThreshold && major[d] > StrongThreshold {
			out = append(out, d)
		}
	}
	return out
}

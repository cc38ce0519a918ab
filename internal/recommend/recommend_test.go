package recommend

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/major-advisor/internal/catalog"
	"github.com/spigell/major-advisor/internal/essay"
	"github.com/spigell/major-advisor/internal/profile"
	"github.com/spigell/major-advisor/internal/taxonomy"
	"github.com/spigell/major-advisor/internal/vector"
)

func defaultCatalog(t *testing.T) []catalog.MajorProfile {
	t.Helper()

	c := catalog.New(zap.NewNop())
	for _, seed := range catalog.DefaultSeeds {
		c.Add(context.Background(), seed, nil)
	}
	return c.Snapshot()
}

func indexOf(recs []Recommendation, major string) int {
	for i, rec := range recs {
		if rec.Major == major {
			return i
		}
	}
	return -1
}

func TestRecommendEmptyCatalog(t *testing.T) {
	t.Parallel()

	_, err := NewMatcher(zap.NewNop(), 0).Recommend(vector.Vector{1, 1, 1, 1, 1}, nil, nil)
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestRecommendIdenticalVectorsAreCapped(t *testing.T) {
	t.Parallel()

	major := catalog.MajorProfile{Name: "Teknik Informatika", Affinity: catalog.Vectorize("Teknik Informatika", "")}

	recs, err := NewMatcher(zap.NewNop(), 0).Recommend(major.Affinity, []catalog.MajorProfile{major}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if recs[0].Similarity != 1 {
		t.Fatalf("expected similarity exactly 1, got %v", recs[0].Similarity)
	}
	if recs[0].Score != MaxScore {
		t.Fatalf("expected score %v, got %v", MaxScore, recs[0].Score)
	}
}

func TestRecommendZeroUserVectorDoesNotFail(t *testing.T) {
	t.Parallel()

	recs, err := NewMatcher(zap.NewNop(), 0).Recommend(vector.Vector{}, defaultCatalog(t), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != DefaultTopK {
		t.Fatalf("expected %d results, got %d", DefaultTopK, len(recs))
	}
	for _, rec := range recs {
		if rec.Score != 0 {
			t.Fatalf("expected zero score, got %v for %s", rec.Score, rec.Major)
		}
	}
	// All scores tie, so catalog order wins.
	if recs[0].Major != catalog.DefaultSeeds[0].Name {
		t.Fatalf("expected catalog order on ties, got %s", recs[0].Major)
	}
}

func TestRecommendIsDeterministic(t *testing.T) {
	t.Parallel()

	majors := defaultCatalog(t)
	user := vector.Vector{0.5, 0.6, 0.3, 0.7, 0.2}
	summary := &essay.Summary{Keywords: []string{"desain", "coding"}, Sentiment: essay.Positive}
	matcher := NewMatcher(zap.NewNop(), len(majors))

	first, err := matcher.Recommend(user, majors, summary)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := matcher.Recommend(user, majors, summary)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("results differ between runs (-first +again):\n%s", diff)
		}
	}

	for i := 1; i < len(first); i++ {
		if first[i-1].Score < first[i].Score {
			t.Fatalf("results not sorted at %d: %v < %v", i, first[i-1].Score, first[i].Score)
		}
	}
}

func TestRecommendTopK(t *testing.T) {
	t.Parallel()

	majors := defaultCatalog(t)

	recs, err := NewMatcher(zap.NewNop(), 5).Recommend(vector.Vector{0.2, 0.2, 0.2, 0.2, 0.2}, majors, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 5 {
		t.Fatalf("expected 5 results, got %d", len(recs))
	}

	recs, err = NewMatcher(zap.NewNop(), 50).Recommend(vector.Vector{0.2, 0.2, 0.2, 0.2, 0.2}, majors[:2], nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 results, got %d", len(recs))
	}
}

func TestMatcherTopKDefault(t *testing.T) {
	t.Parallel()

	if got := NewMatcher(nil, 0).TopK(); got != DefaultTopK {
		t.Fatalf("expected default top %d, got %d", DefaultTopK, got)
	}
	if got := NewMatcher(nil, 7).TopK(); got != 7 {
		t.Fatalf("expected top 7, got %d", got)
	}
}

func TestEssayBonusIsBounded(t *testing.T) {
	t.Parallel()

	keywords := make([]string, 0)
	for kw := range taxonomy.Vocabulary() {
		for i := 0; i < 10; i++ {
			keywords = append(keywords, kw)
		}
	}
	summary := &essay.Summary{Keywords: keywords, Sentiment: essay.Positive}

	for _, name := range []string{
		"Teknik Arsitektur dan Desain Komunikasi Bisnis Hukum Kedokteran Sastra Biologi",
		"Arsitektur",
		"Ilmu Kelautan",
	} {
		bonus, _ := EssayBonus(name, summary)
		if bonus < 0 || bonus > MaxEssayBonus {
			t.Fatalf("bonus %v out of range for %q", bonus, name)
		}
	}

	if bonus, families := EssayBonus("Arsitektur", summary); bonus != 2*FamilyBonus || len(families) != 2 {
		t.Fatalf("expected two family bonus for Arsitektur, got %v %v", bonus, families)
	}
	if bonus, families := EssayBonus("Ilmu Kelautan", summary); bonus != 0 || families != nil {
		t.Fatalf("expected no bonus for unmatched name, got %v %v", bonus, families)
	}
	if bonus, _ := EssayBonus("Arsitektur", nil); bonus != 0 {
		t.Fatalf("expected no bonus without essay, got %v", bonus)
	}
}

func TestExplanation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		strong    []vector.Dimension
		families  []string
		sentiment essay.Sentiment
		contains  []string
	}{
		{
			name:     "balanced",
			contains: []string{"balanced"},
		},
		{
			name:     "strong dimensions",
			strong:   []vector.Dimension{vector.LogicMath, vector.Science},
			contains: []string{"Logic/Math and Science"},
		},
		{
			name:      "essay relevance",
			strong:    []vector.Dimension{vector.Art},
			families:  []string{"arts"},
			sentiment: essay.Positive,
			contains:  []string{"Strong match in Art", "essay", "arts", "enthusiastic"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Explain(tt.strong, tt.families, tt.sentiment)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Fatalf("expected %q in %q", want, got)
				}
			}
		})
	}
}

func TestStrongDimensionsRequireBothVectors(t *testing.T) {
	t.Parallel()

	user := vector.Vector{0.9, 0.9, 0.2, 0.56, 0.55}
	major := vector.Vector{0.9, 0.3, 0.9, 0.9, 0.9}

	got := StrongDimensions(user, major)
	if diff := cmp.Diff([]vector.Dimension{vector.LogicMath, vector.Art}, got); diff != "" {
		t.Fatalf("unexpected strong dimensions (-want +got):\n%s", diff)
	}
}

func TestCareersFollowTaxonomy(t *testing.T) {
	t.Parallel()

	majors := []catalog.MajorProfile{
		{Name: "Teknik Informatika", Affinity: vector.Vector{1, 0.1, 0.1, 0.1, 0.1}},
		{Name: "Ilmu Kelautan", Affinity: vector.Vector{0.1, 0.1, 0.1, 0.1, 1}},
	}

	recs, err := NewMatcher(zap.NewNop(), 0).Recommend(vector.Vector{1, 0, 0, 0, 1}, majors, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, rec := range recs {
		switch rec.Major {
		case "Teknik Informatika":
			if rec.Careers[0] != "Software Engineer" {
				t.Fatalf("unexpected careers: %v", rec.Careers)
			}
		case "Ilmu Kelautan":
			if diff := cmp.Diff(taxonomy.GenericCareers, rec.Careers); diff != "" {
				t.Fatalf("expected generic careers (-want +got):\n%s", diff)
			}
		}
	}
}

func TestScienceStudentPrefersEngineering(t *testing.T) {
	t.Parallel()

	p := &profile.Profile{
		Stream:       profile.StreamScience,
		Core:         profile.CoreScores{MathCore: 95},
		Science:      profile.ScienceScores{Physics: 90, Chemistry: 40, Biology: 40},
		Interests:    profile.Interests{AnalysisProblemSolving: 5, CreativityArt: 5, CommunicationSocial: 5, TechnologyProgramming: 5},
		Competencies: profile.Competencies{Communication: 5, Creativity: 5, Leadership: 5},
	}

	user := profile.Vectorize(p)
	majors := defaultCatalog(t)

	ranked, err := NewMatcher(zap.NewNop(), 0).Rank(user, majors, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	engineering := indexOf(ranked, "Teknik Informatika")
	humanities := indexOf(ranked, "Sastra Indonesia")
	if engineering == -1 || humanities == -1 {
		t.Fatalf("expected both majors in ranking")
	}
	if engineering > humanities {
		t.Fatalf("expected Teknik Informatika (%d) above Sastra Indonesia (%d)", engineering, humanities)
	}
}

func TestArtEssayBoostsDesignMajor(t *testing.T) {
	t.Parallel()

	p := &profile.Profile{
		Stream:       profile.StreamLanguage,
		Interests:    profile.Interests{CreativityArt: 5},
		Competencies: profile.Competencies{Creativity: 5},
		Essay:        "Saya suka menggambar dan desain.",
	}

	user := profile.Vectorize(p)
	if user[vector.Art] < 0.6 {
		t.Fatalf("expected art dimension >= 0.6, got %v", user[vector.Art])
	}

	summary := essay.NewKeywordAnalyzer().Summarize(p.Essay)

	core, logs := observer.New(zap.DebugLevel)
	recs, err := NewMatcher(zap.New(core), 0).Recommend(user, defaultCatalog(t), summary)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	i := indexOf(recs, "Desain Komunikasi Visual")
	if i == -1 {
		t.Fatalf("expected design major in top 3, got %+v", recs)
	}
	if recs[i].EssayBonus <= 0 {
		t.Fatalf("expected essay bonus, got %v", recs[i].EssayBonus)
	}
	if !strings.Contains(recs[i].Explanation, "essay") {
		t.Fatalf("expected essay mention in explanation: %q", recs[i].Explanation)
	}

	if logs.FilterMessage("scored major").Len() != len(catalog.DefaultSeeds) {
		t.Fatalf("expected one debug entry per major, got %d", logs.FilterMessage("scored major").Len())
	}
}

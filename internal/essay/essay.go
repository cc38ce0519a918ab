// Package essay extracts discipline keywords and a coarse sentiment from a
// student's free-text essay.
package essay

import (
	"context"
	"sort"
	"strings"

	"github.com/spigell/major-advisor/internal/taxonomy"
)

// Sentiment is the overall tone of an essay.
type Sentiment string

const (
	Positive Sentiment = "positive"
	Negative Sentiment = "negative"
	Neutral  Sentiment = "neutral"
)

// ParseSentiment maps free-form labels to a Sentiment, defaulting to Neutral.
func ParseSentiment(label string) Sentiment {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "positive", "positif":
		return Positive
	case "negative", "negatif":
		return Negative
	default:
		return Neutral
	}
}

// Summary is what the recommender consumes from an essay.
type Summary struct {
	Keywords  []string  `json:"keywords"`
	Sentiment Sentiment `json:"sentiment"`
}

// HasKeywords reports whether the summary carries any keyword.
func (s *Summary) HasKeywords() bool {
	return s != nil && len(s.Keywords) > 0
}

var positiveWords = map[string]struct{}{
	"suka": {}, "senang": {}, "cinta": {}, "tertarik": {}, "minat": {}, "bersemangat": {}, "hobi": {},
	"love": {}, "like": {}, "enjoy": {}, "passionate": {}, "interested": {},
}

var negativeWords = map[string]struct{}{
	"benci": {}, "bosan": {}, "malas": {}, "takut": {}, "sulit": {},
	"hate": {}, "dislike": {}, "bored": {}, "boring": {},
}

var negations = map[string]struct{}{
	"tidak": {}, "tak": {}, "kurang": {}, "bukan": {}, "not": {}, "don't": {}, "dont": {}, "never": {},
}

// KeywordAnalyzer is the offline analyzer backed by the discipline taxonomy.
type KeywordAnalyzer struct {
	vocabulary map[string]struct{}
	phrases    []string
}

// NewKeywordAnalyzer returns an analyzer using the taxonomy vocabulary.
func NewKeywordAnalyzer() *KeywordAnalyzer {
	vocab := taxonomy.Vocabulary()
	phrases := make([]string, 0)
	for kw := range vocab {
		if strings.Contains(kw, " ") {
			phrases = append(phrases, kw)
		}
	}
	sort.Strings(phrases)
	return &KeywordAnalyzer{vocabulary: vocab, phrases: phrases}
}

// Analyze implements ai.EssayAnalyzer. A blank essay yields a nil summary.
func (a *KeywordAnalyzer) Analyze(_ context.Context, text string) (*Summary, error) {
	return a.Summarize(text), nil
}

// Summarize extracts taxonomy keywords in order of first appearance, followed by
// multi-word keywords, and scores sentiment with a small lexicon. Negations
// flip the next word.
func (a *KeywordAnalyzer) Summarize(text string) *Summary {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	tokens := taxonomy.Tokenize(strings.ReplaceAll(text, "'", ""))
	summary := &Summary{Keywords: []string{}, Sentiment: Neutral}

	seen := make(map[string]struct{})
	balance := 0
	negated := false
	for _, token := range tokens {
		if _, ok := a.vocabulary[token]; ok {
			if _, dup := seen[token]; !dup {
				seen[token] = struct{}{}
				summary.Keywords = append(summary.Keywords, token)
			}
		}

		polarity := 0
		if _, ok := positiveWords[token]; ok {
			polarity = 1
		} else if _, ok := negativeWords[token]; ok {
			polarity = -1
		}

		if polarity != 0 && negated {
			polarity = -polarity
		}
		balance += polarity

		_, negated = negations[token]
	}

	lower := strings.Join(tokens, " ")
	for _, phrase := range a.phrases {
		if strings.Contains(lower, phrase) {
			summary.Keywords = append(summary.Keywords, phrase)
		}
	}

	switch {
	case balance > 0:
		summary.Sentiment = Positive
	case balance < 0:
		summary.Sentiment = Negative
	}

	return summary
}

// Normalize lower-cases, trims and de-duplicates keywords produced by other
// analyzers, dropping empties.
func Normalize(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	seen := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	return out
}

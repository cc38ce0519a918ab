package catalog

import (
	"fmt"
	"strings"

	"github.com/spigell/major-advisor/internal/taxonomy"
	"github.com/spigell/major-advisor/internal/vector"
)

const (
	// KeywordIncrement is added per distinct keyword found in a description.
	KeywordIncrement = 0.1
	// KeywordCap bounds the keyword contribution for a single dimension.
	KeywordCap = 0.3

	MinAffinity = 0.1
	MaxAffinity = 1.0
)

// Placeholder is the description used when no text is available for a major.
func Placeholder(majorName string) string {
	return fmt.Sprintf("%s adalah program studi yang dapat ditempuh setelah lulus SMA.", strings.TrimSpace(majorName))
}

// Vectorize computes the affinity vector of a major from its name priors and
// the keyword density of its description. An empty description is replaced by
// Placeholder. Every component ends up in [MinAffinity, MaxAffinity].
func Vectorize(majorName, description string) vector.Vector {
	if strings.TrimSpace(description) == "" {
		description = Placeholder(majorName)
	}

	v := taxonomy.Priors(majorName)

	lower := strings.ToLower(description)
	tokens := tokenSet(taxonomy.Tokenize(description))

	for _, d := range vector.Dimensions {
		boost := 0.0
		for _, kw := range taxonomy.KeywordsFor(d) {
			if !hasKeyword(lower, tokens, kw) {
				continue
			}
			boost += KeywordIncrement
			if boost >= KeywordCap {
				boost = KeywordCap
				break
			}
		}
		v[d] += boost
	}

	for _, d := range vector.Dimensions {
		v[d] = vector.Clamp(v[d], MinAffinity, MaxAffinity)
	}

	return v
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}

func hasKeyword(lower string, tokens map[string]struct{}, kw string) bool {
	if strings.Contains(kw, " ") {
		return strings.Contains(lower, kw)
	}
	_, ok := tokens[kw]
	return ok
}

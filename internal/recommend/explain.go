package recommend

import (
	"fmt"
	"strings"

	"github.com/spigell/major-advisor/internal/essay"
	"github.com/spigell/major-advisor/internal/vector"
)

const balancedExplanation = "Your profile is balanced across several areas, and this major offers a well-rounded fit."

// Explain renders the human readable reason for a recommendation.
func Explain(strong []vector.Dimension, essayFamilies []string, sentiment essay.Sentiment) string {
	var b strings.Builder

	if len(strong) == 0 {
		b.WriteString(balancedExplanation)
	} else {
		names := make([]string, 0, len(strong))
		for _, d := range strong {
			names = append(names, d.String())
		}
		fmt.Fprintf(&b, "Strong match in %s: both your profile and this major score high there.", joinList(names))
	}

	if len(essayFamilies) > 0 {
		fmt.Fprintf(&b, " Your essay shows interest in %s, which is relevant to this major", joinList(essayFamilies))
		if sentiment == essay.Positive {
			b.WriteString(" and reads enthusiastic")
		}
		b.WriteString(".")
	}

	return b.String()
}

func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}

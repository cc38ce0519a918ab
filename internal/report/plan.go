package report

import (
	"strings"

	"github.com/spigell/major-advisor/internal/recommend"
)

// DevelopmentPlan lists steps for the next years.
type DevelopmentPlan struct {
	ShortTerm  []string `json:"short_term"`
	MediumTerm []string `json:"medium_term"`
	LongTerm   []string `json:"long_term"`
}

var (
	shortTermSteps = []string{
		"Focus on prerequisite subjects",
		"Join relevant extracurricular activities",
		"Explore online courses",
	}
	mediumTermSteps = []string{
		"Prepare for university admission",
		"Look for internship experience",
		"Build a professional network",
	}
	longTermSteps = []string{
		"Complete higher education",
		"Earn professional certifications",
		"Keep learning and adapting",
	}
)

// Plan builds the development plan. Short-term steps include the develop areas
// of the best recommendation.
func Plan(recs []recommend.Recommendation) DevelopmentPlan {
	plan := DevelopmentPlan{
		ShortTerm:  append([]string(nil), shortTermSteps...),
		MediumTerm: append([]string(nil), mediumTermSteps...),
		LongTerm:   append([]string(nil), longTermSteps...),
	}

	if len(recs) > 0 {
		plan.ShortTerm = append(plan.ShortTerm, recs[0].DevelopAreas...)
		if len(recs[0].Skills) > 0 {
			plan.MediumTerm = append(plan.MediumTerm, "Practice skills for "+recs[0].Major+": "+strings.Join(recs[0].Skills, ", "))
		}
	}

	return plan
}

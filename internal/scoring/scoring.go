// Package scoring computes the overall match score from the five category
// scores. It is the local, deterministic counterpart to the weighted-average
// instructions embedded in the assessor prompt; the weights here and in
// prompt.md must stay identical.
package scoring

import (
	"fmt"
	"math"

	"talentmatch/internal/ai"
)

// Category weights. Skills and experience dominate hire-relevance,
// education and location are gating, cultural fit is a soft signal.
const (
	WeightSkills      = 0.40
	WeightExperience  = 0.30
	WeightEducation   = 0.15
	WeightLocation    = 0.10
	WeightCulturalFit = 0.05
)

// WeightSum is checked to be exactly 1.0 in tests.
const WeightSum = WeightSkills + WeightExperience + WeightEducation + WeightLocation + WeightCulturalFit

// Aggregate returns the weighted overall score rounded to the nearest
// integer. Every input must be in [0,100]; the result then is too.
func Aggregate(skills, experience, education, location, culturalFit int) (int, error) {
	scores := map[string]int{
		"skills":       skills,
		"experience":   experience,
		"education":    education,
		"location":     location,
		"cultural fit": culturalFit,
	}
	for name, score := range scores {
		if score < 0 || score > 100 {
			return 0, fmt.Errorf("%s score %d is out of range [0,100]", name, score)
		}
	}

	weighted := float64(skills)*WeightSkills +
		float64(experience)*WeightExperience +
		float64(education)*WeightEducation +
		float64(location)*WeightLocation +
		float64(culturalFit)*WeightCulturalFit

	return int(math.Round(weighted)), nil
}

// AggregateResult recomputes the overall score from the category scores of
// the provided match result. The assessor-supplied overallScore is not
// consulted, so callers can use this to detect drift between the prompt
// weighting and the local one.
func AggregateResult(result *ai.MatchResult) (int, error) {
	if result == nil {
		return 0, fmt.Errorf("match result is required")
	}

	return Aggregate(
		result.SkillsMatch.Score,
		result.ExperienceMatch.Score,
		result.EducationMatch.Score,
		result.LocationMatch.Score,
		result.CulturalFit.Score,
	)
}

package ai

import (
	"context"
	"fmt"

	"talentmatch/internal/profile"
)

// MatchResult is the five-category scored assessment of one candidate
// against one job.
type MatchResult struct {
	OverallScore    int             `json:"overallScore"`
	SkillsMatch     SkillsMatch     `json:"skillsMatch"`
	ExperienceMatch ExperienceMatch `json:"experienceMatch"`
	EducationMatch  EducationMatch  `json:"educationMatch"`
	LocationMatch   LocationMatch   `json:"locationMatch"`
	CulturalFit     CulturalFit     `json:"culturalFit"`
	Recommendations []string        `json:"recommendations"`
	Summary         string          `json:"summary"`
}

type SkillsMatch struct {
	Score         int      `json:"score"`
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`
	Explanation   string   `json:"explanation"`
}

type ExperienceMatch struct {
	Score              int      `json:"score"`
	RelevantExperience []string `json:"relevantExperience"`
	ExperienceGap      string   `json:"experienceGap,omitempty"`
	Explanation        string   `json:"explanation"`
}

type EducationMatch struct {
	Score             int    `json:"score"`
	MeetsRequirements bool   `json:"meetsRequirements"`
	Explanation       string `json:"explanation"`
}

type LocationMatch struct {
	Score       int    `json:"score"`
	Compatible  bool   `json:"compatible"`
	Explanation string `json:"explanation"`
}

type CulturalFit struct {
	Score       int      `json:"score"`
	Strengths   []string `json:"strengths"`
	Concerns    []string `json:"concerns,omitempty"`
	Explanation string   `json:"explanation"`
}

// Assessor produces one MatchResult for exactly one candidate/job pair.
// Implementations do not retry and do not persist; retry policy belongs to
// the batch runner.
type Assessor interface {
	Assess(ctx context.Context, candidate *profile.CandidateProfile, job *profile.JobPosting) (*MatchResult, error)
}

// GenerationError reports a failed structured-generation call: transport
// failure, empty or malformed output, or a schema violation.
type GenerationError struct {
	Stage string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("match generation failed (%s): %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Validate checks the invariants every assessor must guarantee on success.
// It is also applied to results loaded back from storage.
func (r *MatchResult) Validate() error {
	if r == nil {
		return fmt.Errorf("match result is required")
	}

	scores := map[string]int{
		"overallScore":    r.OverallScore,
		"skillsMatch":     r.SkillsMatch.Score,
		"experienceMatch": r.ExperienceMatch.Score,
		"educationMatch":  r.EducationMatch.Score,
		"locationMatch":   r.LocationMatch.Score,
		"culturalFit":     r.CulturalFit.Score,
	}
	for name, score := range scores {
		if score < 0 || score > 100 {
			return fmt.Errorf("%s score %d is out of range [0,100]", name, score)
		}
	}

	if r.Summary == "" {
		return fmt.Errorf("summary is required")
	}

	return nil
}

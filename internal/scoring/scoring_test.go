package scoring

import (
	"testing"

	"talentmatch/internal/ai"
)

func TestWeightSum(t *testing.T) {
	if WeightSum != 1.0 {
		t.Fatalf("weights must sum to exactly 1.0, got %v", WeightSum)
	}
}

func TestAggregate(t *testing.T) {
	cases := []struct {
		name                                                 string
		skills, experience, education, location, culturalFit int
		want                                                 int
	}{
		{"half rounds up", 90, 80, 100, 50, 70, 84}, // 83.5
		{"all zero", 0, 0, 0, 0, 0, 0},
		{"all max", 100, 100, 100, 100, 100, 100},
		{"skills only", 100, 0, 0, 0, 0, 40},
		{"small value rounds down", 1, 0, 0, 0, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Aggregate(tc.skills, tc.experience, tc.education, tc.location, tc.culturalFit)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
			if got < 0 || got > 100 {
				t.Fatalf("aggregate %d out of range", got)
			}
		})
	}
}

func TestAggregateDeterminism(t *testing.T) {
	first, err := Aggregate(73, 41, 88, 12, 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := Aggregate(73, 41, 88, 12, 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Fatalf("expected identical results, got %d and %d", first, second)
	}
}

func TestAggregateRejectsOutOfRange(t *testing.T) {
	if _, err := Aggregate(101, 0, 0, 0, 0); err == nil {
		t.Fatal("expected error for score above 100")
	}

	if _, err := Aggregate(0, -1, 0, 0, 0); err == nil {
		t.Fatal("expected error for negative score")
	}
}

func TestAggregateResult(t *testing.T) {
	result := &ai.MatchResult{
		OverallScore:    5, // ignored; the aggregate is recomputed
		SkillsMatch:     ai.SkillsMatch{Score: 90},
		ExperienceMatch: ai.ExperienceMatch{Score: 80},
		EducationMatch:  ai.EducationMatch{Score: 100},
		LocationMatch:   ai.LocationMatch{Score: 50},
		CulturalFit:     ai.CulturalFit{Score: 70},
	}

	got, err := AggregateResult(result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 84 {
		t.Fatalf("expected 84, got %d", got)
	}

	if _, err := AggregateResult(nil); err == nil {
		t.Fatal("expected error for nil result")
	}
}

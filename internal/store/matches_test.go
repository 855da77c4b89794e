package store

import (
	"testing"
)

func TestDecodeMatchDetails(t *testing.T) {
	raw := []byte(`{
		"overallScore": 84,
		"skillsMatch": {"score": 90, "matchedSkills": ["Go"], "missingSkills": [], "explanation": "ok"},
		"experienceMatch": {"score": 80, "relevantExperience": [], "explanation": "ok"},
		"educationMatch": {"score": 100, "meetsRequirements": true, "explanation": "ok"},
		"locationMatch": {"score": 50, "compatible": true, "explanation": "ok"},
		"culturalFit": {"score": 70, "strengths": [], "explanation": "ok"},
		"recommendations": ["interview"],
		"summary": "solid",
		"legacyField": "ignored"
	}`)

	result, err := decodeMatchDetails(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.OverallScore != 84 {
		t.Fatalf("expected overall score 84, got %d", result.OverallScore)
	}
	if result.SkillsMatch.Score != 90 || result.SkillsMatch.MatchedSkills[0] != "Go" {
		t.Fatalf("unexpected skills match: %+v", result.SkillsMatch)
	}
	if !result.EducationMatch.MeetsRequirements {
		t.Fatal("expected education requirements flag to survive decoding")
	}
	if result.Summary != "solid" {
		t.Fatalf("unexpected summary: %q", result.Summary)
	}
}

func TestDecodeMatchDetailsInvalid(t *testing.T) {
	if _, err := decodeMatchDetails([]byte("not json")); err == nil {
		t.Fatal("expected error for invalid json")
	}
}

func TestParseCandidatePool(t *testing.T) {
	cases := []struct {
		input string
		want  CandidatePool
		fails bool
	}{
		{"", PoolShared, false},
		{"shared", PoolShared, false},
		{"owner", PoolOwner, false},
		{"everyone", "", true},
	}

	for _, tc := range cases {
		got, err := ParseCandidatePool(tc.input)
		if tc.fails {
			if err == nil {
				t.Fatalf("expected error for %q", tc.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("expected %q for %q, got %q", tc.want, tc.input, got)
		}
	}
}

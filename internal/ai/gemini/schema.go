package gemini

import (
	"google.golang.org/genai"
)

// matchResultSchema mirrors schema.json for the Gemini structured-output
// path. Both describe the same shape; schema.json stays the contract of
// record because it is also applied to the raw response.
var matchResultSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"overallScore": scoreSchema(),
		"skillsMatch": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"score":         scoreSchema(),
				"matchedSkills": stringArraySchema(),
				"missingSkills": stringArraySchema(),
				"explanation":   {Type: genai.TypeString},
			},
			Required: []string{"score", "matchedSkills", "missingSkills", "explanation"},
		},
		"experienceMatch": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"score":              scoreSchema(),
				"relevantExperience": stringArraySchema(),
				"experienceGap":      {Type: genai.TypeString},
				"explanation":        {Type: genai.TypeString},
			},
			Required: []string{"score", "relevantExperience", "explanation"},
		},
		"educationMatch": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"score":             scoreSchema(),
				"meetsRequirements": {Type: genai.TypeBoolean},
				"explanation":       {Type: genai.TypeString},
			},
			Required: []string{"score", "meetsRequirements", "explanation"},
		},
		"locationMatch": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"score":       scoreSchema(),
				"compatible":  {Type: genai.TypeBoolean},
				"explanation": {Type: genai.TypeString},
			},
			Required: []string{"score", "compatible", "explanation"},
		},
		"culturalFit": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"score":       scoreSchema(),
				"strengths":   stringArraySchema(),
				"concerns":    stringArraySchema(),
				"explanation": {Type: genai.TypeString},
			},
			Required: []string{"score", "strengths", "explanation"},
		},
		"recommendations": stringArraySchema(),
		"summary":         {Type: genai.TypeString},
	},
	Required: []string{
		"overallScore",
		"skillsMatch",
		"experienceMatch",
		"educationMatch",
		"locationMatch",
		"culturalFit",
		"recommendations",
		"summary",
	},
}

func scoreSchema() *genai.Schema {
	return &genai.Schema{
		Type:    genai.TypeInteger,
		Minimum: genai.Ptr(0.0),
		Maximum: genai.Ptr(100.0),
	}
}

func stringArraySchema() *genai.Schema {
	return &genai.Schema{
		Type:  genai.TypeArray,
		Items: &genai.Schema{Type: genai.TypeString},
	}
}

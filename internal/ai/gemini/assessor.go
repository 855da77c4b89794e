package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"talentmatch/internal/ai"
	"talentmatch/internal/logger"
	"talentmatch/internal/profile"
)

type structuredGenerator interface {
	GenerateStructured(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
	Model() string
}

// Assessor is the production ai.Assessor backed by Gemini structured output.
type Assessor struct {
	generator structuredGenerator
	logger    *zap.Logger
	maxLogLen int
}

//go:embed prompt.md
var promptTemplate string

//go:embed schema.json
var matchResultSchemaJSON []byte

const defaultMaxLogLength = 200

func NewAssessor(generator structuredGenerator, log *zap.Logger, maxLogLength int) *Assessor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Assessor{
		generator: generator,
		logger:    logger.WithFields(log, logger.CommonFields("gemini", generator.Model())...),
		maxLogLen: maxLogLength,
	}
}

// Assess builds the match prompt for the candidate/job pair, requests a
// schema-constrained response, and returns the parsed result. Any failure
// is reported as *ai.GenerationError; there is no internal retry.
func (a *Assessor) Assess(ctx context.Context, candidate *profile.CandidateProfile, job *profile.JobPosting) (*ai.MatchResult, error) {
	if err := candidate.Validate(); err != nil {
		return nil, err
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}

	prompt := buildPrompt(candidate, job)

	a.logger.Debug("gemini match request",
		zap.String("candidate_id", candidate.ID.String()),
		zap.String("job_id", job.ID.String()),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, a.maxLogLen)),
	)

	raw, err := a.generator.GenerateStructured(ctx, prompt, matchResultSchema)
	if err != nil {
		return nil, &ai.GenerationError{Stage: "generate", Err: err}
	}

	a.logger.Debug("gemini match response",
		zap.String("candidate_id", candidate.ID.String()),
		zap.String("job_id", job.ID.String()),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, a.maxLogLen)),
	)

	result, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func buildPrompt(candidate *profile.CandidateProfile, job *profile.JobPosting) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Candidate:\n{{CANDIDATE}}\n\nJob:\n{{JOB}}\n\nJSON Response:"
	}
	prompt := strings.ReplaceAll(template, "{{CANDIDATE}}", candidate.PromptText())
	prompt = strings.ReplaceAll(prompt, "{{JOB}}", job.PromptText())
	return prompt
}

// parseResponse enforces the schema contract on the raw payload before
// unmarshalling, so a malformed response never yields a partially populated
// result.
func parseResponse(raw string) (*ai.MatchResult, error) {
	validation, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(matchResultSchemaJSON),
		gojsonschema.NewStringLoader(raw),
	)
	if err != nil {
		return nil, &ai.GenerationError{Stage: "validate", Err: err}
	}

	if !validation.Valid() {
		issues := make([]string, 0, len(validation.Errors()))
		for _, desc := range validation.Errors() {
			issues = append(issues, desc.String())
		}
		return nil, &ai.GenerationError{
			Stage: "validate",
			Err:   fmt.Errorf("response violates match result schema: %s", strings.Join(issues, "; ")),
		}
	}

	var result ai.MatchResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, &ai.GenerationError{Stage: "decode", Err: err}
	}

	return &result, nil
}

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"

	"talentmatch/internal/ai"
)

// StoredMatch is one persisted (job, candidate) assessment. Rows are never
// mutated; a re-run for the job replaces them wholesale.
type StoredMatch struct {
	JobID        uuid.UUID       `json:"job_id"`
	CandidateID  uuid.UUID       `json:"candidate_id"`
	OwnerID      uuid.UUID       `json:"owner_id"`
	MatchScore   int             `json:"match_score"`
	MatchDetails *ai.MatchResult `json:"match_details"`
	CreatedAt    time.Time       `json:"created_at"`
}

// DeleteMatchesForJob clears every stored match for the job. Called before
// a batch run repopulates the set.
func (s *Store) DeleteMatchesForJob(ctx context.Context, jobID uuid.UUID) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM resume_matches WHERE job_id = $1`, jobID); err != nil {
		return fmt.Errorf("delete matches for job %s: %w", jobID, err)
	}
	return nil
}

// InsertMatch persists one assessment.
func (s *Store) InsertMatch(ctx context.Context, match *StoredMatch) error {
	details, err := json.Marshal(match.MatchDetails)
	if err != nil {
		return fmt.Errorf("marshal match details: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO resume_matches (job_id, resume_id, user_id, match_score, match_details)
		 VALUES ($1, $2, $3, $4, $5)`,
		match.JobID, match.CandidateID, match.OwnerID, match.MatchScore, details,
	)
	if err != nil {
		return fmt.Errorf("insert match: %w", err)
	}

	return nil
}

// ListMatchesForJob returns the stored matches for a job ranked by score.
func (s *Store) ListMatchesForJob(ctx context.Context, jobID uuid.UUID) ([]*StoredMatch, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT job_id, resume_id, user_id, match_score, match_details, created_at
		 FROM resume_matches WHERE job_id = $1
		 ORDER BY match_score DESC, resume_id`,
		jobID,
	)
	if err != nil {
		return nil, fmt.Errorf("list matches for job %s: %w", jobID, err)
	}
	defer rows.Close()

	var matches []*StoredMatch
	for rows.Next() {
		var (
			m           StoredMatch
			detailsJSON []byte
		)
		if err := rows.Scan(&m.JobID, &m.CandidateID, &m.OwnerID, &m.MatchScore, &detailsJSON, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan match row: %w", err)
		}

		details, err := decodeMatchDetails(detailsJSON)
		if err != nil {
			return nil, fmt.Errorf("decode match details for candidate %s: %w", m.CandidateID, err)
		}
		m.MatchDetails = details

		matches = append(matches, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list matches for job %s: %w", jobID, err)
	}

	return matches, nil
}

// decodeMatchDetails tolerates historical payloads with extra or oddly
// typed fields by decoding through a generic map keyed on the json tags.
func decodeMatchDetails(raw []byte) (*ai.MatchResult, error) {
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}

	var result ai.MatchResult
	cfg := &mapstructure.DecoderConfig{
		Result:           &result,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(payload); err != nil {
		return nil, err
	}

	return &result, nil
}

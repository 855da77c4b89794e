package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"talentmatch/internal/profile"
)

// CandidatePool names the scoping rule for candidate fetches. The shared
// pool exposes every parsed resume in the system to any batch run; the
// owner pool restricts runs to the job owner's own uploads.
type CandidatePool string

const (
	PoolShared CandidatePool = "shared"
	PoolOwner  CandidatePool = "owner"
)

func ParseCandidatePool(s string) (CandidatePool, error) {
	switch CandidatePool(s) {
	case PoolShared, "":
		return PoolShared, nil
	case PoolOwner:
		return PoolOwner, nil
	default:
		return "", fmt.Errorf("unknown candidate pool %q (want %q or %q)", s, PoolShared, PoolOwner)
	}
}

// ListCandidates returns candidate profiles ordered most recent first.
// The ownerID is consulted only for the owner pool.
func (s *Store) ListCandidates(ctx context.Context, pool CandidatePool, ownerID uuid.UUID) ([]*profile.CandidateProfile, error) {
	query := `SELECT id, user_id, parsed_data FROM parsed_resumes ORDER BY created_at DESC`
	args := []any{}

	if pool == PoolOwner {
		query = `SELECT id, user_id, parsed_data FROM parsed_resumes WHERE user_id = $1 ORDER BY created_at DESC`
		args = append(args, ownerID)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []*profile.CandidateProfile
	for rows.Next() {
		var (
			id, owner  uuid.UUID
			parsedJSON []byte
		)
		if err := rows.Scan(&id, &owner, &parsedJSON); err != nil {
			return nil, fmt.Errorf("scan candidate row: %w", err)
		}

		var c profile.CandidateProfile
		if err := json.Unmarshal(parsedJSON, &c); err != nil {
			return nil, fmt.Errorf("decode parsed resume %s: %w", id, err)
		}
		c.ID = id
		c.OwnerID = owner

		candidates = append(candidates, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	return candidates, nil
}

package matching

import (
	"fmt"

	"github.com/google/uuid"
)

// JobNotFoundError aborts a batch run: the job does not exist or belongs to
// a different owner.
type JobNotFoundError struct {
	JobID uuid.UUID
}

func (e *JobNotFoundError) Error() string {
	return fmt.Sprintf("job %s not found", e.JobID)
}

// CandidateFetchError aborts a batch run: without the candidate pool there
// is nothing to score.
type CandidateFetchError struct {
	Err error
}

func (e *CandidateFetchError) Error() string {
	return fmt.Sprintf("fetch candidates: %v", e.Err)
}

func (e *CandidateFetchError) Unwrap() error {
	return e.Err
}

// StoreError aborts a batch run on a fetch-level persistence failure, such
// as the pre-run delete of existing matches. Per-candidate insert failures
// are not StoreErrors; they are tolerated and reported as skips.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

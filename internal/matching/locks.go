package matching

import (
	"sync"

	"github.com/google/uuid"
)

// jobLocks serializes batch runs per job id. Two concurrent runs for the
// same job would interleave the delete-then-insert sequence and corrupt the
// stored match set; runs for distinct jobs proceed independently.
type jobLocks struct {
	locks sync.Map
}

func (l *jobLocks) lock(jobID uuid.UUID) func() {
	mu, _ := l.locks.LoadOrStore(jobID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

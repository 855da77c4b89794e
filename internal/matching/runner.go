// Package matching orchestrates batch assessment of every known candidate
// against one job posting.
package matching

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"talentmatch/internal/ai"
	"talentmatch/internal/profile"
	"talentmatch/internal/scoring"
	"talentmatch/internal/store"
)

const (
	defaultPaceInterval = 100 * time.Millisecond
	defaultTopN         = 10
)

// Store is the persistence surface the runner needs.
type Store interface {
	GetJob(ctx context.Context, jobID, ownerID uuid.UUID) (*profile.JobPosting, error)
	ListCandidates(ctx context.Context, pool store.CandidatePool, ownerID uuid.UUID) ([]*profile.CandidateProfile, error)
	DeleteMatchesForJob(ctx context.Context, jobID uuid.UUID) error
	InsertMatch(ctx context.Context, match *store.StoredMatch) error
}

// Config controls a runner's scoping, pacing, and reporting.
type Config struct {
	// CandidatePool selects the candidate scoping rule. Shared preserves
	// the historical behavior of scoring every candidate in the system.
	CandidatePool store.CandidatePool
	// PaceInterval is the minimum spacing between assessor calls. Zero
	// selects the default; a negative value disables pacing.
	PaceInterval time.Duration
	// TopN bounds the ranked matches returned in the summary.
	TopN int
}

// Match is one successful assessment in a batch summary.
type Match struct {
	CandidateID uuid.UUID       `json:"candidateId"`
	Score       int             `json:"score"`
	Details     *ai.MatchResult `json:"details"`
}

// SkippedCandidate records a candidate that contributed nothing to the run
// and why.
type SkippedCandidate struct {
	CandidateID uuid.UUID `json:"candidateId"`
	Reason      string    `json:"reason"`
}

// BatchSummary reports the outcome of one batch run. MatchesCreated below
// TotalCandidates signals partial failure; Skipped carries the reasons.
type BatchSummary struct {
	JobID           uuid.UUID          `json:"jobId"`
	TotalCandidates int                `json:"totalCandidates"`
	MatchesCreated  int                `json:"matchesCreated"`
	TopMatches      []Match            `json:"topMatches"`
	Skipped         []SkippedCandidate `json:"skipped,omitempty"`
}

// Runner drives batch matching: one assessor call at a time, paced by a
// token bucket, tolerant of per-candidate failures.
type Runner struct {
	store    Store
	assessor ai.Assessor
	logger   *zap.Logger
	config   Config
	limiter  *rate.Limiter
	locks    jobLocks
}

func NewRunner(st Store, assessor ai.Assessor, logger *zap.Logger, config Config) *Runner {
	if config.CandidatePool == "" {
		config.CandidatePool = store.PoolShared
	}
	if config.PaceInterval == 0 {
		config.PaceInterval = defaultPaceInterval
	}
	if config.TopN <= 0 {
		config.TopN = defaultTopN
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	var limiter *rate.Limiter
	if config.PaceInterval > 0 {
		limiter = rate.NewLimiter(rate.Every(config.PaceInterval), 1)
	}

	return &Runner{
		store:    st,
		assessor: assessor,
		logger:   logger,
		config:   config,
		limiter:  limiter,
	}
}

// RunBatch scores every candidate in the configured pool against the job,
// replacing any previously stored matches for it. Individual assessment or
// insert failures are logged, reported in Skipped, and never abort the run;
// only a missing job or a fetch-level store failure does.
func (r *Runner) RunBatch(ctx context.Context, jobID, ownerID uuid.UUID) (*BatchSummary, error) {
	unlock := r.locks.lock(jobID)
	defer unlock()

	job, err := r.store.GetJob(ctx, jobID, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrJobNotFound) {
			return nil, &JobNotFoundError{JobID: jobID}
		}
		return nil, &StoreError{Op: "get job", Err: err}
	}

	candidates, err := r.store.ListCandidates(ctx, r.config.CandidatePool, ownerID)
	if err != nil {
		return nil, &CandidateFetchError{Err: err}
	}

	r.logger.Info("starting batch matching",
		zap.String("job_id", jobID.String()),
		zap.String("candidate_pool", string(r.config.CandidatePool)),
		zap.Int("candidates", len(candidates)),
	)

	// Full replace: the run owns the job's match set from here on.
	if err := r.store.DeleteMatchesForJob(ctx, jobID); err != nil {
		return nil, &StoreError{Op: "delete existing matches", Err: err}
	}

	summary := &BatchSummary{
		JobID:           jobID,
		TotalCandidates: len(candidates),
	}

	var matches []Match
	for _, candidate := range candidates {
		if err := r.pace(ctx); err != nil {
			return nil, err
		}

		match, err := r.assessCandidate(ctx, candidate, job)
		if err != nil {
			r.logger.Warn("candidate assessment failed",
				zap.String("job_id", jobID.String()),
				zap.String("candidate_id", candidate.ID.String()),
				zap.Error(err),
			)
			summary.Skipped = append(summary.Skipped, SkippedCandidate{
				CandidateID: candidate.ID,
				Reason:      err.Error(),
			})
			continue
		}

		stored := &store.StoredMatch{
			JobID:        jobID,
			CandidateID:  candidate.ID,
			OwnerID:      ownerID,
			MatchScore:   match.Score,
			MatchDetails: match.Details,
		}
		if err := r.store.InsertMatch(ctx, stored); err != nil {
			r.logger.Warn("storing match failed",
				zap.String("job_id", jobID.String()),
				zap.String("candidate_id", candidate.ID.String()),
				zap.Error(err),
			)
			summary.Skipped = append(summary.Skipped, SkippedCandidate{
				CandidateID: candidate.ID,
				Reason:      "persistence: " + err.Error(),
			})
			continue
		}

		r.logger.Debug("match stored",
			zap.String("job_id", jobID.String()),
			zap.String("candidate_id", candidate.ID.String()),
			zap.Int("score", match.Score),
		)

		matches = append(matches, match)
	}

	summary.MatchesCreated = len(matches)
	summary.TopMatches = topMatches(matches, r.config.TopN)

	r.logger.Info("batch matching completed",
		zap.String("job_id", jobID.String()),
		zap.Int("total_candidates", summary.TotalCandidates),
		zap.Int("matches_created", summary.MatchesCreated),
		zap.Int("skipped", len(summary.Skipped)),
	)

	return summary, nil
}

// assessCandidate runs one assessment and recomputes the overall score
// locally. The generator's own overallScore is advisory; the persisted and
// ranked score always comes from the weighted aggregate so the two scoring
// paths cannot drift apart.
func (r *Runner) assessCandidate(ctx context.Context, candidate *profile.CandidateProfile, job *profile.JobPosting) (Match, error) {
	result, err := r.assessor.Assess(ctx, candidate, job)
	if err != nil {
		return Match{}, err
	}

	score, err := scoring.AggregateResult(result)
	if err != nil {
		return Match{}, &ai.GenerationError{Stage: "aggregate", Err: err}
	}
	result.OverallScore = score

	return Match{
		CandidateID: candidate.ID,
		Score:       score,
		Details:     result,
	}, nil
}

func (r *Runner) pace(ctx context.Context) error {
	if r.limiter == nil {
		return nil
	}
	return r.limiter.Wait(ctx)
}

func topMatches(matches []Match, n int) []Match {
	ranked := make([]Match, len(matches))
	copy(ranked, matches)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].CandidateID.String() < ranked[j].CandidateID.String()
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}

	return ranked
}

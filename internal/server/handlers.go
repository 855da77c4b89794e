package server

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"talentmatch/internal/matching"
)

// ownerHeader carries the authenticated owner identity. Session handling
// belongs to the surrounding application; this server only requires the
// header to be a valid uuid.
const ownerHeader = "X-Owner-ID"

// handleRunMatching runs the batch for one job and returns its summary.
func (s *Server) handleRunMatching(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid job id")
		return
	}

	ownerID, err := uuid.Parse(r.Header.Get(ownerHeader))
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "missing or invalid "+ownerHeader+" header")
		return
	}

	summary, err := s.runner.RunBatch(r.Context(), jobID, ownerID)
	if err != nil {
		s.logger.Error("batch matching failed",
			zap.String("job_id", jobID.String()),
			zap.Error(err),
		)
		s.errorResponse(w, batchStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, summary)
}

// handleListMatches returns the stored matches for a job, ranked by score.
func (s *Server) handleListMatches(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid job id")
		return
	}

	matches, err := s.matches.ListMatchesForJob(r.Context(), jobID)
	if err != nil {
		s.logger.Error("listing matches failed",
			zap.String("job_id", jobID.String()),
			zap.Error(err),
		)
		s.errorResponse(w, http.StatusInternalServerError, "failed to list matches")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"jobId":   jobID,
		"matches": matches,
	})
}

// batchStatus maps the batch error taxonomy to HTTP status codes.
func batchStatus(err error) int {
	var notFound *matching.JobNotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"talentmatch/internal/profile"
)

// GetJob retrieves one job posting by id, scoped to its owner. Returns
// ErrJobNotFound when no such row exists.
func (s *Store) GetJob(ctx context.Context, jobID, ownerID uuid.UUID) (*profile.JobPosting, error) {
	var j profile.JobPosting

	err := s.pool.QueryRow(ctx,
		`SELECT id, user_id, title, company, location, employment_type,
		        experience_level, description, required_skills, preferred_skills,
		        COALESCE(education_requirements, ''), COALESCE(experience_requirements, '')
		 FROM job_descriptions WHERE id = $1 AND user_id = $2`,
		jobID, ownerID,
	).Scan(&j.ID, &j.OwnerID, &j.Title, &j.Company, &j.Location, &j.EmploymentType,
		&j.ExperienceLevel, &j.Description, &j.RequiredSkills, &j.PreferredSkills,
		&j.EducationRequirements, &j.ExperienceRequirements)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("get job posting: %w", err)
	}

	return &j, nil
}

package profile

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// JobPosting is an immutable snapshot of one job description.
type JobPosting struct {
	ID                     uuid.UUID `json:"id"`
	OwnerID                uuid.UUID `json:"owner_id"`
	Title                  string    `json:"title"`
	Company                string    `json:"company"`
	Location               string    `json:"location"`
	EmploymentType         string    `json:"employment_type"`
	ExperienceLevel        string    `json:"experience_level"`
	Description            string    `json:"description"`
	RequiredSkills         []string  `json:"required_skills"`
	PreferredSkills        []string  `json:"preferred_skills,omitempty"`
	EducationRequirements  string    `json:"education_requirements,omitempty"`
	ExperienceRequirements string    `json:"experience_requirements,omitempty"`
}

func (j *JobPosting) Validate() error {
	if j == nil {
		return fmt.Errorf("job posting is required")
	}
	if strings.TrimSpace(j.Title) == "" {
		return fmt.Errorf("job title is required")
	}
	if strings.TrimSpace(j.Description) == "" {
		return fmt.Errorf("job description is required")
	}
	return nil
}

// PromptText renders the full job block embedded in the assessor prompt.
func (j *JobPosting) PromptText() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Title: %s\n", j.Title)
	fmt.Fprintf(&b, "Company: %s\n", j.Company)
	fmt.Fprintf(&b, "Location: %s\n", j.Location)
	fmt.Fprintf(&b, "Type: %s\n", j.EmploymentType)
	fmt.Fprintf(&b, "Experience Level: %s\n\n", j.ExperienceLevel)

	fmt.Fprintf(&b, "Description: %s\n\n", j.Description)

	fmt.Fprintf(&b, "Required Skills: %s\n", strings.Join(j.RequiredSkills, ", "))

	preferred := "None specified"
	if len(j.PreferredSkills) > 0 {
		preferred = strings.Join(j.PreferredSkills, ", ")
	}
	fmt.Fprintf(&b, "Preferred Skills: %s\n\n", preferred)

	fmt.Fprintf(&b, "Education Requirements: %s\n", orNotSpecified(j.EducationRequirements))
	fmt.Fprintf(&b, "Experience Requirements: %s", orNotSpecified(j.ExperienceRequirements))

	return b.String()
}

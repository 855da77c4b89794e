package profile

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const notSpecified = "Not specified"

// CandidateProfile is an immutable snapshot of one parsed resume.
type CandidateProfile struct {
	ID           uuid.UUID    `json:"id"`
	OwnerID      uuid.UUID    `json:"owner_id"`
	PersonalInfo PersonalInfo `json:"personal_info"`
	Summary      string       `json:"summary,omitempty"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	Skills       Skills       `json:"skills"`
}

type PersonalInfo struct {
	FullName string `json:"full_name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

type Experience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description"`
}

type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
}

type Skills struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

func (c *CandidateProfile) Validate() error {
	if c == nil {
		return fmt.Errorf("candidate profile is required")
	}
	if strings.TrimSpace(c.PersonalInfo.FullName) == "" {
		return fmt.Errorf("candidate full name is required")
	}
	return nil
}

// PromptText renders one line per experience entry as
// "position at company (start - end): description".
func (e Experience) PromptText() string {
	end := e.EndDate
	if strings.TrimSpace(end) == "" {
		end = "Present"
	}
	return fmt.Sprintf("%s at %s (%s - %s): %s", e.Position, e.Company, e.StartDate, end, e.Description)
}

func (e Education) PromptText() string {
	field := e.Field
	if strings.TrimSpace(field) == "" {
		field = "N/A"
	}
	return fmt.Sprintf("%s in %s from %s", e.Degree, field, e.Institution)
}

// PromptText renders the full candidate block embedded in the assessor prompt.
func (c *CandidateProfile) PromptText() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Name: %s\n", c.PersonalInfo.FullName)
	fmt.Fprintf(&b, "Location: %s\n\n", orNotSpecified(c.PersonalInfo.Location))

	summary := strings.TrimSpace(c.Summary)
	if summary == "" {
		summary = "No summary provided"
	}
	fmt.Fprintf(&b, "Summary: %s\n\n", summary)

	b.WriteString("Experience:\n")
	for _, exp := range c.Experience {
		fmt.Fprintf(&b, "- %s\n", exp.PromptText())
	}

	b.WriteString("\nEducation:\n")
	for _, edu := range c.Education {
		fmt.Fprintf(&b, "- %s\n", edu.PromptText())
	}

	fmt.Fprintf(&b, "\nTechnical Skills: %s\n", strings.Join(c.Skills.Technical, ", "))
	fmt.Fprintf(&b, "Soft Skills: %s", strings.Join(c.Skills.Soft, ", "))

	return b.String()
}

func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return notSpecified
	}
	return s
}

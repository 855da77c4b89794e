package profile

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func testCandidate() *CandidateProfile {
	return &CandidateProfile{
		ID: uuid.New(),
		PersonalInfo: PersonalInfo{
			FullName: "Jordan Reyes",
			Location: "Lisbon, Portugal",
		},
		Summary: "Backend engineer with a data focus",
		Experience: []Experience{
			{Company: "Acme", Position: "Backend Engineer", StartDate: "2019-03", EndDate: "2023-06", Description: "Built billing services"},
			{Company: "Globex", Position: "Senior Engineer", StartDate: "2023-07", Description: "Leads data platform work"},
		},
		Education: []Education{
			{Institution: "University of Porto", Degree: "BSc", Field: "Computer Science"},
			{Institution: "Coursera", Degree: "Certificate"},
		},
		Skills: Skills{
			Technical: []string{"Go", "SQL", "Python"},
			Soft:      []string{"Mentoring"},
		},
	}
}

func testJob() *JobPosting {
	return &JobPosting{
		ID:              uuid.New(),
		Title:           "Data Engineer",
		Company:         "Initech",
		Location:        "Remote",
		EmploymentType:  "full-time",
		ExperienceLevel: "senior",
		Description:     "Own the data warehouse",
		RequiredSkills:  []string{"SQL", "Python"},
	}
}

func TestCandidatePromptText(t *testing.T) {
	text := testCandidate().PromptText()

	for _, want := range []string{
		"Name: Jordan Reyes",
		"Location: Lisbon, Portugal",
		"Backend Engineer at Acme (2019-03 - 2023-06): Built billing services",
		"Senior Engineer at Globex (2023-07 - Present): Leads data platform work",
		"BSc in Computer Science from University of Porto",
		"Certificate in N/A from Coursera",
		"Technical Skills: Go, SQL, Python",
		"Soft Skills: Mentoring",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("prompt text missing %q:\n%s", want, text)
		}
	}
}

func TestCandidatePromptTextDefaults(t *testing.T) {
	c := &CandidateProfile{PersonalInfo: PersonalInfo{FullName: "Sam"}}
	text := c.PromptText()

	if !strings.Contains(text, "Location: Not specified") {
		t.Fatalf("expected location placeholder, got:\n%s", text)
	}
	if !strings.Contains(text, "Summary: No summary provided") {
		t.Fatalf("expected summary placeholder, got:\n%s", text)
	}
}

func TestJobPromptText(t *testing.T) {
	text := testJob().PromptText()

	for _, want := range []string{
		"Title: Data Engineer",
		"Company: Initech",
		"Required Skills: SQL, Python",
		"Preferred Skills: None specified",
		"Education Requirements: Not specified",
		"Experience Requirements: Not specified",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("prompt text missing %q:\n%s", want, text)
		}
	}
}

func TestCandidateValidate(t *testing.T) {
	if err := testCandidate().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	empty := &CandidateProfile{}
	if err := empty.Validate(); err == nil {
		t.Fatal("expected error for missing full name")
	}
}

func TestJobValidate(t *testing.T) {
	if err := testJob().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	noTitle := &JobPosting{Description: "something"}
	if err := noTitle.Validate(); err == nil {
		t.Fatal("expected error for missing title")
	}

	noDescription := &JobPosting{Title: "something"}
	if err := noDescription.Validate(); err == nil {
		t.Fatal("expected error for missing description")
	}
}

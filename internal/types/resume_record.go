// Package types provides type definitions for structured data used throughout the resume-scanner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// DocumentFormat identifies the container format of an uploaded document.
type DocumentFormat string

const (
	FormatPDF  DocumentFormat = "pdf"
	FormatDOCX DocumentFormat = "docx"
)

// ContactInfo holds the contact fields extracted from the resume header.
// Every field is optional; a field is only populated when it passes its
// type-specific validator.
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// ExperienceEntry represents one job held by the candidate.
type ExperienceEntry struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"` // "Present" when the role is current
	Description string `json:"description,omitempty"`
}

// IsCurrent reports whether the entry describes the candidate's current role.
func (e *ExperienceEntry) IsCurrent() bool {
	return e.EndDate == PresentSentinel
}

// PresentSentinel is the normalized end date for a role still held.
const PresentSentinel = "Present"

// EducationEntry represents one degree or program.
type EducationEntry struct {
	Degree         string `json:"degree,omitempty"`
	Institution    string `json:"institution,omitempty"`
	Location       string `json:"location,omitempty"`
	GraduationDate string `json:"graduation_date,omitempty"`
	GPA            string `json:"gpa,omitempty"`
}

// CertificationEntry represents one certification line.
type CertificationEntry struct {
	Name string `json:"name"`
	Year string `json:"year,omitempty"`
}

// DocumentMetadata carries coarse facts about the source document.
type DocumentMetadata struct {
	Filename  string         `json:"filename,omitempty"`
	Format    DocumentFormat `json:"format"`
	PageCount int            `json:"page_count,omitempty"`
	WordCount int            `json:"word_count"`
	HasPhoto  bool           `json:"has_photo"`
	Strategy  string         `json:"strategy,omitempty"` // which extraction strategy produced the text
}

// ResumeRecord is the sole output of the extraction pipeline and the sole
// input to scoring. It is created once per upload and never mutated in place.
type ResumeRecord struct {
	Contact        ContactInfo          `json:"contact"`
	Summary        string               `json:"summary,omitempty"`
	Experience     []ExperienceEntry    `json:"experience"`
	Education      []EducationEntry     `json:"education"`
	Skills         []string             `json:"skills"`
	Certifications []CertificationEntry `json:"certifications,omitempty"`
	Metadata       DocumentMetadata     `json:"metadata"`
	RawText        string               `json:"raw_text,omitempty"`
}

// ParseConfidence estimates how trustworthy the extraction was, 0-100.
// It is recomputed on demand and never stored.
type ParseConfidence struct {
	Score  int             `json:"score"`
	Checks map[string]bool `json:"checks"`
}

package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scanner/internal/types"
)

func TestExtractContact_Email(t *testing.T) {
	contact := ExtractContact("Jane Doe\njane.doe+work@example.co.uk\n")
	assert.Equal(t, "jane.doe+work@example.co.uk", contact.Email)
}

func TestExtractContact_InternationalPhone(t *testing.T) {
	contact := ExtractContact("Jane Doe\n+91-8220594700")
	assert.Equal(t, "+91-8220594700", contact.Phone)
}

func TestExtractContact_BarePhone(t *testing.T) {
	// A bare 10-digit string without country code must also populate the
	// phone field.
	contact := ExtractContact("Jane Doe\n8220594700")
	assert.Equal(t, "8220594700", contact.Phone)
}

func TestExtractContact_NANPPhone(t *testing.T) {
	contact := ExtractContact("Jane Doe\n(415) 555-2671")
	assert.Equal(t, "(415) 555-2671", contact.Phone)
}

func TestExtractContact_NameRejectsSectionHeaders(t *testing.T) {
	// A section header captured as the first line must not become the name.
	contact := ExtractContact("Professional Summary\nJane Doe\njane@example.com")
	assert.Equal(t, "Jane Doe", contact.Name)
}

func TestExtractContact_NameRepairsArtifacts(t *testing.T) {
	contact := ExtractContact("J A N E  D O E\njane@example.com")
	assert.Equal(t, "JANE DOE", contact.Name)
}

func TestExtractContact_ScansWholeDocument(t *testing.T) {
	// Multi-column layouts can place the contact block far from the top of
	// the linear reading order.
	long := "Delivered various projects across teams.\n"
	text := ""
	for i := 0; i < 40; i++ {
		text += long
	}
	text += "Jane Doe\njane@example.com\n+1 415-555-2671"

	contact := ExtractContact(text)

	assert.Equal(t, "jane@example.com", contact.Email)
	assert.NotEmpty(t, contact.Phone)
}

func TestExtractContact_ProfileLinks(t *testing.T) {
	contact := ExtractContact("linkedin.com/in/janedoe\nhttps://github.com/janedoe")
	assert.Equal(t, "linkedin.com/in/janedoe", contact.LinkedIn)
	assert.Equal(t, "https://github.com/janedoe", contact.GitHub)
}

func TestParseDateRange_MonthNames(t *testing.T) {
	start, end := ParseDateRange("Jan 2020 - Mar 2022")
	assert.Equal(t, "Jan 2020", start)
	assert.Equal(t, "Mar 2022", end)
}

func TestParseDateRange_PresentSentinel(t *testing.T) {
	for _, line := range []string{"Jan 2020 - Present", "01/2020 - current", "2020 to now"} {
		start, end := ParseDateRange(line)
		assert.NotEmpty(t, start, "line %q", line)
		assert.Equal(t, types.PresentSentinel, end, "line %q", line)
	}
}

func TestParseDateRange_NumericAndBareYear(t *testing.T) {
	start, end := ParseDateRange("03/2018 - 2021")
	assert.Equal(t, "03/2018", start)
	assert.Equal(t, "2021", end)
}

func TestParseExperienceEntry_TitleCompanyDates(t *testing.T) {
	entry := ParseExperienceEntry(RawEntry{Lines: []string{
		"Senior Engineer at Acme Corp, Jan 2020 - Present",
		"Led the platform team.",
		"Shipped the billing rewrite.",
	}})

	assert.Equal(t, "Senior Engineer", entry.Title)
	assert.Equal(t, "Acme Corp", entry.Company)
	assert.Equal(t, "Jan 2020", entry.StartDate)
	assert.Equal(t, types.PresentSentinel, entry.EndDate)
	assert.Contains(t, entry.Description, "Led the platform team.")
	assert.True(t, entry.IsCurrent())
}

func TestParseExperienceEntry_PipeSeparator(t *testing.T) {
	entry := ParseExperienceEntry(RawEntry{Lines: []string{"Data Analyst | Initech"}})
	assert.Equal(t, "Data Analyst", entry.Title)
	assert.Equal(t, "Initech", entry.Company)
}

func TestParseExperienceEntry_CompanyOnSecondLine(t *testing.T) {
	entry := ParseExperienceEntry(RawEntry{Lines: []string{
		"Senior Software Engineer",
		"Acme Technologies",
		"Jan 2019 - Dec 2021",
		"Owned the ingest pipeline.",
	}})

	assert.Equal(t, "Senior Software Engineer", entry.Title)
	assert.Equal(t, "Acme Technologies", entry.Company)
	assert.Equal(t, "Jan 2019", entry.StartDate)
	assert.Equal(t, "Dec 2021", entry.EndDate)
}

func TestParseEducationEntry_SlashSeparator(t *testing.T) {
	entry := ParseEducationEntry(RawEntry{Lines: []string{
		"Master of Business Administration / Indian Institute of Technology",
	}})

	assert.Equal(t, "Master of Business Administration", entry.Degree)
	assert.Equal(t, "Indian Institute of Technology", entry.Institution)
}

func TestParseEducationEntry_InstitutionFirst(t *testing.T) {
	entry := ParseEducationEntry(RawEntry{Lines: []string{
		"State University - Bachelor of Science in Physics",
	}})

	assert.Equal(t, "Bachelor of Science in Physics", entry.Degree)
	assert.Equal(t, "State University", entry.Institution)
}

func TestParseEducationEntry_MultiLineWithGPA(t *testing.T) {
	entry := ParseEducationEntry(RawEntry{Lines: []string{
		"Bachelor of Technology in Computer Science",
		"Indian Institute of Technology",
		"GPA: 3.8/4.0",
		"2015",
	}})

	assert.Equal(t, "Bachelor of Technology in Computer Science", entry.Degree)
	assert.Equal(t, "Indian Institute of Technology", entry.Institution)
	assert.Equal(t, "3.8", entry.GPA)
	assert.Equal(t, "2015", entry.GraduationDate)
}

func TestParseEducationEntry_ArtifactInstitutionNormalized(t *testing.T) {
	entry := ParseEducationEntry(RawEntry{Lines: []string{
		"Master of Business Administration / I N D I A N INSTITUTE OF TECHNOLOGY",
	}})

	assert.Equal(t, "INDIAN INSTITUTE OF TECHNOLOGY", entry.Institution)
}

func TestParseCertification_NameAndYear(t *testing.T) {
	entry := ParseCertification("AWS Certified Solutions Architect (2022)")
	assert.Equal(t, "AWS Certified Solutions Architect", entry.Name)
	assert.Equal(t, "2022", entry.Year)
}

func TestIsPlausibleName(t *testing.T) {
	assert.True(t, isPlausibleName("Jane Doe"))
	assert.True(t, isPlausibleName("Jean-Luc van Damme"))
	assert.False(t, isPlausibleName("Jane"))
	assert.False(t, isPlausibleName("Professional Summary"))
	assert.False(t, isPlausibleName("jane@example.com"))
	assert.False(t, isPlausibleName("Call me on 555"))
}

func TestSplitTitleCompany_NoSeparator(t *testing.T) {
	title, company := splitTitleCompany("Freelance Consultant")
	assert.Equal(t, "Freelance Consultant", title)
	assert.Empty(t, company)
}

func TestStripDates_RemovesRangeAndSeparator(t *testing.T) {
	require.Equal(t, "Senior Engineer at Acme Corp", stripDates("Senior Engineer at Acme Corp, Jan 2020 - Mar 2022"))
}

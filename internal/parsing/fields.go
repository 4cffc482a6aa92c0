package parsing

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/jonathan/resume-scanner/internal/types"
)

var (
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	linkedinPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9_-]+/?`)
	githubPattern   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9_-]+/?`)
	gpaPattern      = regexp.MustCompile(`(?i)\b(?:gpa|cgpa)[:\s]*([0-9]\.[0-9]{1,2})(?:\s*/\s*[0-9.]+)?`)

	// Phone candidates come in two shapes that must both be checked:
	// North-American grouping with hyphens/parentheses, and international
	// "+country code" strings. Assuming a single format is a design bug.
	internationalPhonePattern = regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{3,5}[-.\s]?\d{3,7}`)
	nanpPhonePattern          = regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

	monthNameDatePattern = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?,?\s*\d{4}\b`)
	numericDatePattern   = regexp.MustCompile(`\b\d{1,2}[/.-]\d{4}\b`)
	bareYearPattern      = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	presentPattern       = regexp.MustCompile(`(?i)\b(present|current|now|till date|ongoing)\b`)

	// cityStatePattern matches "Austin, TX" / "Bengaluru, India" style
	// location lines.
	cityStatePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z .'-]*,\s*[A-Za-z][A-Za-z .'-]*$`)

	nameWordPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z'.-]*$`)
	nonDigitPattern = regexp.MustCompile(`\D`)

	trailingRangeSeparatorPattern = regexp.MustCompile(`\s*(-|–|—|to)\s*$`)
)

// nameDenylist holds section-header tokens that must never be accepted as a
// candidate name, guarding against a header captured as the first line.
var nameDenylist = map[string]bool{
	"resume": true, "curriculum": true, "vitae": true, "summary": true,
	"objective": true, "profile": true, "experience": true, "education": true,
	"skills": true, "certifications": true, "projects": true, "contact": true,
	"professional": true, "career": true, "employment": true, "qualifications": true,
}

// ExtractContact pulls contact fields out of the full normalized document
// text. It scans every line, not a prefix: multi-column layouts place the
// header content anywhere in linear reading order.
func ExtractContact(text string) types.ContactInfo {
	var contact types.ContactInfo

	if email := emailPattern.FindString(text); email != "" {
		contact.Email = email
	}
	if link := linkedinPattern.FindString(text); link != "" {
		contact.LinkedIn = strings.TrimSuffix(link, "/")
	}
	if link := githubPattern.FindString(text); link != "" {
		contact.GitHub = strings.TrimSuffix(link, "/")
	}
	contact.Phone = extractPhone(text)

	for _, rawLine := range strings.Split(text, "\n") {
		line := NormalizeField(rawLine)
		if line == "" {
			continue
		}
		if contact.Name == "" && isPlausibleName(line) {
			contact.Name = line
			continue
		}
		if contact.Location == "" && len(line) < 60 && cityStatePattern.MatchString(line) {
			contact.Location = line
		}
	}

	return contact
}

// extractPhone finds the first phone candidate that validates. International
// candidates are checked with libphonenumber metadata; candidates without a
// country code are tried as North-American numbers and finally accepted as a
// bare 10-digit string, since resumes routinely omit the country code.
func extractPhone(text string) string {
	for _, candidate := range internationalPhonePattern.FindAllString(text, -1) {
		if num, err := phonenumbers.Parse(candidate, ""); err == nil && phonenumbers.IsValidNumber(num) {
			return candidate
		}
		if digits := countDigits(candidate); digits >= 10 && digits <= 13 {
			return candidate
		}
	}

	for _, candidate := range nanpPhonePattern.FindAllString(text, -1) {
		if num, err := phonenumbers.Parse(candidate, "US"); err == nil && phonenumbers.IsValidNumber(num) {
			return candidate
		}
		if countDigits(candidate) == 10 {
			return candidate
		}
	}

	return ""
}

func countDigits(s string) int {
	return len(nonDigitPattern.ReplaceAllString(s, ""))
}

// isPlausibleName reports whether a line reads like a person's name: two to
// four alphabetic words, none on the section-header denylist, no digits or
// contact markers.
func isPlausibleName(line string) bool {
	if strings.ContainsAny(line, "@0123456789") {
		return false
	}

	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 4 {
		return false
	}

	for _, word := range words {
		if !nameWordPattern.MatchString(word) {
			return false
		}
		if nameDenylist[strings.ToLower(word)] {
			return false
		}
	}

	return true
}

// ParseDateRange extracts a start and end date from a line. End is the
// Present sentinel when the line carries a present/current marker.
func ParseDateRange(line string) (start, end string) {
	dates := findDates(line)

	if presentPattern.MatchString(line) {
		end = types.PresentSentinel
	}

	if len(dates) > 0 {
		start = dates[0]
	}
	if end == "" && len(dates) > 1 {
		end = dates[len(dates)-1]
	}

	return start, end
}

// findDates returns every date token in a line, in order, preferring
// month-name and numeric forms over bare years so "Jan 2020" is not also
// counted as "2020".
func findDates(line string) []string {
	type span struct {
		start, end int
		text       string
	}
	var spans []span

	for _, pattern := range []*regexp.Regexp{monthNameDatePattern, numericDatePattern} {
		for _, loc := range pattern.FindAllStringIndex(line, -1) {
			spans = append(spans, span{loc[0], loc[1], line[loc[0]:loc[1]]})
		}
	}

	for _, loc := range bareYearPattern.FindAllStringIndex(line, -1) {
		covered := false
		for _, s := range spans {
			if loc[0] >= s.start && loc[1] <= s.end {
				covered = true
				break
			}
		}
		if !covered {
			spans = append(spans, span{loc[0], loc[1], line[loc[0]:loc[1]]})
		}
	}

	// Insertion sort by position; the slices are tiny.
	for i := 1; i < len(spans); i++ {
		for j := i; j > 0 && spans[j-1].start > spans[j].start; j-- {
			spans[j-1], spans[j] = spans[j], spans[j-1]
		}
	}

	dates := make([]string, 0, len(spans))
	for _, s := range spans {
		dates = append(dates, s.text)
	}
	return dates
}

// ParseExperienceEntry extracts typed fields from one raw experience entry.
// The first line is treated as the employer/title header; remaining lines
// become the free-text description.
func ParseExperienceEntry(raw RawEntry) types.ExperienceEntry {
	var entry types.ExperienceEntry
	if len(raw.Lines) == 0 {
		return entry
	}

	header := raw.Lines[0]
	entry.StartDate, entry.EndDate = ParseDateRange(header)
	header = stripDates(header)

	title, company := splitTitleCompany(header)
	entry.Title = NormalizeField(title)
	entry.Company = NormalizeField(company)

	rest := raw.Lines[1:]
	if len(rest) > 0 {
		first := NormalizeField(rest[0])
		switch {
		case cityStatePattern.MatchString(first) && len(first) < 60:
			entry.Location = first
			rest = rest[1:]
		case entry.Company == "" && looksLikeOrganization(first):
			entry.Company = first
			rest = rest[1:]
		}
	}

	if entry.StartDate == "" && entry.EndDate == "" && len(rest) > 0 {
		entry.StartDate, entry.EndDate = ParseDateRange(rest[0])
	}

	entry.Description = strings.TrimSpace(strings.Join(rest, "\n"))
	return entry
}

// ParseEducationEntry extracts typed fields from one raw education entry.
// The degree line splits from the institution on " - ", " / " or "," when
// both sit on one line; otherwise the institution is sought on later lines.
func ParseEducationEntry(raw RawEntry) types.EducationEntry {
	var entry types.EducationEntry
	if len(raw.Lines) == 0 {
		return entry
	}

	header := raw.Lines[0]
	if dates := findDates(header); len(dates) > 0 {
		entry.GraduationDate = dates[len(dates)-1]
	}

	degree, institution := splitDegreeInstitution(stripDates(header))
	entry.Degree = NormalizeField(degree)
	entry.Institution = NormalizeField(institution)

	for _, rawLine := range raw.Lines[1:] {
		line := NormalizeField(rawLine)
		if line == "" {
			continue
		}
		if m := gpaPattern.FindStringSubmatch(line); m != nil && entry.GPA == "" {
			entry.GPA = m[1]
			continue
		}
		if entry.GraduationDate == "" {
			if dates := findDates(line); len(dates) > 0 {
				entry.GraduationDate = dates[len(dates)-1]
			}
		}
		if entry.Institution == "" && looksLikeOrganization(line) {
			entry.Institution = stripDates(line)
			entry.Institution = NormalizeField(entry.Institution)
			continue
		}
		if entry.Location == "" && cityStatePattern.MatchString(line) && len(line) < 60 {
			entry.Location = line
		}
	}

	if m := gpaPattern.FindStringSubmatch(raw.Text()); m != nil && entry.GPA == "" {
		entry.GPA = m[1]
	}

	return entry
}

// ParseCertification turns one certification-section line into an entry,
// splitting off a trailing year when present.
func ParseCertification(line string) types.CertificationEntry {
	entry := types.CertificationEntry{Name: NormalizeField(stripDates(line))}
	if year := bareYearPattern.FindString(line); year != "" {
		entry.Year = year
	}
	entry.Name = strings.Trim(entry.Name, " -,()")
	return entry
}

// organizationPattern recognizes institution and employer names.
var organizationPattern = regexp.MustCompile(`(?i)\b(university|college|institute|school|academy|inc|llc|ltd|corp|corporation|technologies|solutions|systems|labs|gmbh)\b`)

func looksLikeOrganization(line string) bool {
	return organizationPattern.MatchString(line)
}

// splitTitleCompany splits a header line into title and company on the first
// recognized separator. With no separator the whole line is the title.
func splitTitleCompany(header string) (title, company string) {
	header = strings.TrimSpace(header)
	for _, sep := range titleCompanySeparators {
		if idx := strings.Index(header, sep); idx > 0 {
			return header[:idx], strings.Trim(header[idx+len(sep):], " ,")
		}
	}
	if idx := strings.Index(header, ","); idx > 0 {
		return header[:idx], strings.Trim(header[idx+1:], " ,")
	}
	return header, ""
}

// splitDegreeInstitution splits a one-line education header into degree and
// institution.
func splitDegreeInstitution(header string) (degree, institution string) {
	header = strings.TrimSpace(header)
	for _, sep := range []string{" - ", " – ", " / ", " | ", ","} {
		if idx := strings.Index(header, sep); idx > 0 {
			left := strings.TrimSpace(header[:idx])
			right := strings.Trim(header[idx+len(sep):], " ,")
			// The degree keyword decides which side is which.
			if degreeTriggerPattern.MatchString(left) {
				return left, right
			}
			if degreeTriggerPattern.MatchString(right) {
				return right, left
			}
			return left, right
		}
	}
	return header, ""
}

// stripDates removes every date token from a line, leaving surrounding text.
func stripDates(line string) string {
	for _, date := range findDates(line) {
		line = strings.Replace(line, date, "", 1)
	}
	line = presentPattern.ReplaceAllString(line, "")
	line = trailingRangeSeparatorPattern.ReplaceAllString(strings.TrimSpace(line), "")
	line = strings.Trim(line, " ,-–—|(")
	line = strings.TrimSpace(line)
	return strings.Trim(line, "()")
}

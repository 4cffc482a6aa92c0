package ingestion

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelector removes page chrome that never belongs to a job posting.
const noiseSelector = "nav, footer, header, script, style, noscript, .ad, .advertisement, .sidebar, .cookie-banner, .popup"

// contentSelectors locate the posting body, most specific first.
var contentSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	".posting-content",
	".job-details",
	"main",
	"article",
	".content",
	"#content",
}

// ExtractHTML parses a saved job-posting page and returns its main text.
// Navigation, scripts, and ad chrome are stripped; when no content selector
// matches, the whole body is used.
func ExtractHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", &IngestError{Message: "parse HTML", Cause: err}
	}

	doc.Find(noiseSelector).Remove()

	var main *goquery.Selection
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			main = sel.First()
			break
		}
	}
	if main == nil {
		main = doc.Find("body")
	}

	return CleanText(main.Text()), nil
}

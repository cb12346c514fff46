package usecase

import (
	"strings"

	"adhelm/internal/core/domain"
)

// thinContentChars is the minimum total text length across blocks below
// which the page is flagged as thin.
const thinContentChars = 120

const warningPenalty = 15

// RunRefiner audits a landing page's structural readiness. A missing
// call-to-action or lead-capture form is a blocking error; softer
// heuristics (missing SEO title, thin content, no hero headline) are
// warnings. The score starts at 100, loses warningPenalty per warning
// and is forced to 0 while any blocking error exists. The audit has no
// side effects, so re-running it on an unchanged page is stable.
func RunRefiner(page domain.LandingPage) domain.RefinerResult {
	var res domain.RefinerResult

	var hasCTA, hasLeadForm, hasHero bool
	textLen := 0
	for _, b := range page.Blocks {
		switch b.Type {
		case domain.BlockCTA:
			hasCTA = true
		case domain.BlockLeadForm:
			hasLeadForm = true
		case domain.BlockHero:
			hasHero = true
		}
		textLen += len(strings.TrimSpace(b.Text))
	}

	if !hasCTA {
		res.BlockingErrors = append(res.BlockingErrors, domain.Issue{
			Code:     "missing_cta",
			Severity: domain.SeverityBlocking,
			Message:  "page has no call-to-action block",
		})
	}
	if !hasLeadForm {
		res.BlockingErrors = append(res.BlockingErrors, domain.Issue{
			Code:     "missing_lead_form",
			Severity: domain.SeverityBlocking,
			Message:  "page has no lead-capture form",
		})
	}
	if page.SEOTitle == "" {
		res.Warnings = append(res.Warnings, domain.Issue{
			Code:     "missing_seo_title",
			Severity: domain.SeverityWarning,
			Message:  "page has no SEO title",
		})
	}
	if !hasHero {
		res.Warnings = append(res.Warnings, domain.Issue{
			Code:     "missing_hero",
			Severity: domain.SeverityWarning,
			Message:  "page has no hero headline block",
		})
	}
	if textLen < thinContentChars {
		res.Warnings = append(res.Warnings, domain.Issue{
			Code:     "thin_content",
			Severity: domain.SeverityWarning,
			Message:  "page content is too thin to convert well",
		})
	}

	if len(res.BlockingErrors) > 0 {
		res.Score = 0
		return res
	}
	score := 100 - warningPenalty*len(res.Warnings)
	if score < 0 {
		score = 0
	}
	res.Score = score
	return res
}

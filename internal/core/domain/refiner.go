package domain

// BlockType identifies the kind of a landing-page content block.
type BlockType string

const (
	BlockHero     BlockType = "hero"
	BlockText     BlockType = "text"
	BlockImage    BlockType = "image"
	BlockCTA      BlockType = "cta"
	BlockLeadForm BlockType = "lead_form"
)

// ContentBlock is one building block of a landing page.
type ContentBlock struct {
	Type BlockType `json:"type"`
	Text string    `json:"text"`
}

// LandingPage is the document the refiner audits. Pages exist
// independently of campaigns; an audit may or may not be attached to one.
type LandingPage struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	SEOTitle string         `json:"seo_title"`
	Blocks   []ContentBlock `json:"blocks"`
}

// IssueSeverity tags an audit finding. Blocking issues prevent campaign
// approval; warnings only lower the score.
type IssueSeverity string

const (
	SeverityBlocking IssueSeverity = "blocking"
	SeverityWarning  IssueSeverity = "warning"
)

// Issue is a single audit finding.
type Issue struct {
	Code     string        `json:"code"`
	Severity IssueSeverity `json:"severity"`
	Message  string        `json:"message"`
}

// RefinerResult is the outcome of one landing-page audit. Score is a
// 0-100 readiness value, forced to 0 when blocking errors exist.
type RefinerResult struct {
	BlockingErrors []Issue `json:"blocking_errors"`
	Warnings       []Issue `json:"warnings"`
	Score          int     `json:"score"`
}

// Ready reports whether the page may back an approved campaign.
func (r RefinerResult) Ready() bool {
	return len(r.BlockingErrors) == 0
}

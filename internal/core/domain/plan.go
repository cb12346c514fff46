package domain

// OccalizerMode selects how aggressively a campaign bids.
type OccalizerMode string

const (
	ModeTop   OccalizerMode = "TOP"
	ModeFair  OccalizerMode = "FAIR"
	ModeRisky OccalizerMode = "RISKY"
)

// Valid reports whether m is a known occalizer mode.
func (m OccalizerMode) Valid() bool {
	switch m {
	case ModeTop, ModeFair, ModeRisky:
		return true
	}
	return false
}

// CPLRange is the expected cost-per-lead window for a mode. Low < High
// always holds for results produced by the occalizer.
type CPLRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// OccalizerResult maps a risk mode to a bidding-aggressiveness score and
// an expected CPL range. It is recomputed on demand from the mode alone
// and never persisted on its own.
type OccalizerResult struct {
	Mode                  OccalizerMode `json:"mode"`
	BiddingAggressiveness float64       `json:"bidding_aggressiveness"`
	ExpectedCPL           CPLRange      `json:"expected_cpl"`
}

// KeywordGroup is a categorised set of search terms.
type KeywordGroup struct {
	Category string   `json:"category"`
	Terms    []string `json:"terms"`
}

// CreativeSkeleton holds headline and description slots for the ad
// creatives. Copy is templated from the blueprint, not final.
type CreativeSkeleton struct {
	Headlines    []string `json:"headlines"`
	Descriptions []string `json:"descriptions"`
}

// CampaignPlan is the plan builder's output. It is embedded inside a
// Campaign and never mutated independently once the campaign leaves
// draft.
type CampaignPlan struct {
	Summary         string           `json:"summary"`
	KeywordGroups   []KeywordGroup   `json:"keyword_groups"`
	Creative        CreativeSkeleton `json:"creative"`
	TargetingNotes  []string         `json:"targeting_notes"`
	LaunchChecklist []string         `json:"launch_checklist"`
	BudgetCaps      BudgetCaps       `json:"budget_caps"`
	Occalizer       OccalizerResult  `json:"occalizer"`
}

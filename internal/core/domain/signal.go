package domain

import "time"

// Scenario classifies a campaign's live performance into an operational
// category driving recommended actions.
type Scenario string

const (
	ScenarioOnTrack     Scenario = "ON_TRACK"
	ScenarioScale       Scenario = "SCALE"
	ScenarioStopLoss    Scenario = "STOP_LOSS"
	ScenarioNeedsReview Scenario = "NEEDS_REVIEW"
)

// Metrics is one live performance report for a campaign. Spend and CPL
// are in currency units; ConversionRate is a fraction in [0,1].
type Metrics struct {
	Spend          float64  `json:"spend"`
	Leads          int64    `json:"leads"`
	CPL            float64  `json:"cpl"`
	ConversionRate *float64 `json:"conversion_rate,omitempty"`
	// LandingPageScore is the refiner score at report time, when known.
	LandingPageScore *int `json:"landing_page_score,omitempty"`
}

// ScenarioThresholds configures the scenario evaluator. Defaults are
// provided by the usecase layer; tenants may override them.
type ScenarioThresholds struct {
	TargetCPL          float64 `json:"target_cpl"`
	MinConversionRate  float64 `json:"min_conversion_rate"`
	StopLossMultiplier float64 `json:"stop_loss_multiplier"`
	// StopLossMaxLeads is the "near zero" lead count below or at which a
	// runaway CPL is treated as stop-loss rather than noise.
	StopLossMaxLeads int64 `json:"stop_loss_max_leads"`
	// ScaleMargin is the fraction of TargetCPL under which a campaign is
	// considered comfortably cheap enough to scale.
	ScaleMargin     float64 `json:"scale_margin"`
	MinSpendToJudge float64 `json:"min_spend_to_judge"`
	MinLeadsToJudge int64   `json:"min_leads_to_judge"`
}

// Evaluation is the scenario evaluator's verdict. Every scenario except
// ON_TRACK carries at least one recommended action.
type Evaluation struct {
	Scenario Scenario `json:"scenario"`
	Actions  []string `json:"actions"`
}

// LearningSignal is one append-only record of an evaluated outcome, kept
// for future threshold tuning. Records are never updated or deleted.
type LearningSignal struct {
	ID               string
	TenantID         string
	CampaignID       string
	CPL              float64
	ConversionRate   *float64
	LandingPageScore *int
	OccalizerMode    OccalizerMode
	Scenario         Scenario
	RecordedAt       time.Time
}

package configs

import "adhelm/internal/core/domain"

// Scenario holds the default thresholds for the performance-scenario
// evaluator. Tenants may override these via a stored scenario config;
// the values here are the fleet-wide fallback.
type Scenario struct {
	// TargetCPL is the cost-per-lead a campaign is steered toward, in
	// currency units.
	TargetCPL float64 `env:"TARGET_CPL" envDefault:"50"`
	// MinConversionRate is the conversion-rate floor below which a
	// campaign needs manual review.
	MinConversionRate float64 `env:"MIN_CONVERSION_RATE" envDefault:"0.02"`
	// StopLossMultiplier scales TargetCPL into the runaway-CPL bound.
	StopLossMultiplier float64 `env:"STOP_LOSS_MULTIPLIER" envDefault:"2"`
	// StopLossMaxLeads is the lead count at or under which a runaway CPL
	// triggers stop-loss.
	StopLossMaxLeads int64 `env:"STOP_LOSS_MAX_LEADS" envDefault:"1"`
	// ScaleMargin is the fraction of TargetCPL under which scaling up is
	// recommended.
	ScaleMargin float64 `env:"SCALE_MARGIN" envDefault:"0.75"`
	// MinSpendToJudge and MinLeadsToJudge gate classification: below
	// either, the evaluator reports NEEDS_REVIEW instead of guessing.
	MinSpendToJudge float64 `env:"MIN_SPEND_TO_JUDGE" envDefault:"50"`
	MinLeadsToJudge int64   `env:"MIN_LEADS_TO_JUDGE" envDefault:"3"`
}

// Thresholds converts the config section into the domain type consumed
// by the evaluator.
func (c Scenario) Thresholds() domain.ScenarioThresholds {
	return domain.ScenarioThresholds{
		TargetCPL:          c.TargetCPL,
		MinConversionRate:  c.MinConversionRate,
		StopLossMultiplier: c.StopLossMultiplier,
		StopLossMaxLeads:   c.StopLossMaxLeads,
		ScaleMargin:        c.ScaleMargin,
		MinSpendToJudge:    c.MinSpendToJudge,
		MinLeadsToJudge:    c.MinLeadsToJudge,
	}
}

package usecase

import "adhelm/internal/core/domain"

// DefaultThresholds returns the scenario thresholds used when a tenant
// has no override configured.
func DefaultThresholds() domain.ScenarioThresholds {
	return domain.ScenarioThresholds{
		TargetCPL:          50,
		MinConversionRate:  0.02,
		StopLossMultiplier: 2,
		StopLossMaxLeads:   1,
		ScaleMargin:        0.75,
		MinSpendToJudge:    50,
		MinLeadsToJudge:    3,
	}
}

// EvaluateScenario classifies one live metrics report into an
// operational scenario with recommended actions. It is a pure function
// of the metrics and thresholds. Zero-valued threshold fields (partial
// tenant overrides) fall back to the defaults before classification.
func EvaluateScenario(m domain.Metrics, th domain.ScenarioThresholds) domain.Evaluation {
	th = fillThresholds(th)

	// Runaway CPL with next to no leads: cut losses before anything else.
	if m.CPL >= th.StopLossMultiplier*th.TargetCPL && m.Leads <= th.StopLossMaxLeads {
		return domain.Evaluation{
			Scenario: domain.ScenarioStopLoss,
			Actions: []string{
				"Pause the campaign or cut the daily budget sharply.",
				"Re-run the landing-page audit before resuming.",
				"Tighten keyword groups to higher-intent terms.",
			},
		}
	}

	// Too little data to judge either way.
	if m.Spend < th.MinSpendToJudge || m.Leads < th.MinLeadsToJudge {
		return domain.Evaluation{
			Scenario: domain.ScenarioNeedsReview,
			Actions: []string{
				"Let the campaign accrue more spend before changing anything.",
				"Review targeting settings manually.",
			},
		}
	}

	if m.ConversionRate != nil && *m.ConversionRate < th.MinConversionRate {
		return domain.Evaluation{
			Scenario: domain.ScenarioNeedsReview,
			Actions: []string{
				"Conversion rate is below target; inspect the lead form and page copy.",
			},
		}
	}

	// Comfortably under target: room to grow spend toward the total cap.
	if m.CPL > 0 && m.CPL <= th.ScaleMargin*th.TargetCPL {
		return domain.Evaluation{
			Scenario: domain.ScenarioScale,
			Actions: []string{
				"Increase the daily budget toward the campaign's total cap.",
				"Extend the best-performing keyword groups.",
			},
		}
	}

	return domain.Evaluation{Scenario: domain.ScenarioOnTrack, Actions: []string{}}
}

func fillThresholds(th domain.ScenarioThresholds) domain.ScenarioThresholds {
	def := DefaultThresholds()
	if th.TargetCPL <= 0 {
		th.TargetCPL = def.TargetCPL
	}
	if th.MinConversionRate <= 0 {
		th.MinConversionRate = def.MinConversionRate
	}
	if th.StopLossMultiplier <= 0 {
		th.StopLossMultiplier = def.StopLossMultiplier
	}
	if th.StopLossMaxLeads < 0 {
		th.StopLossMaxLeads = def.StopLossMaxLeads
	}
	if th.ScaleMargin <= 0 {
		th.ScaleMargin = def.ScaleMargin
	}
	if th.MinSpendToJudge <= 0 {
		th.MinSpendToJudge = def.MinSpendToJudge
	}
	if th.MinLeadsToJudge <= 0 {
		th.MinLeadsToJudge = def.MinLeadsToJudge
	}
	return th
}

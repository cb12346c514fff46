package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"adhelm/internal/core/domain"
)

func TestScenarioStopLoss(t *testing.T) {
	th := DefaultThresholds()
	eval := EvaluateScenario(domain.Metrics{
		Spend: 250,
		Leads: 0,
		CPL:   2 * th.TargetCPL,
	}, th)

	require.Equal(t, domain.ScenarioStopLoss, eval.Scenario)
	require.NotEmpty(t, eval.Actions)
}

func TestScenarioNeedsReviewOnThinData(t *testing.T) {
	eval := EvaluateScenario(domain.Metrics{Spend: 10, Leads: 1, CPL: 10}, DefaultThresholds())
	require.Equal(t, domain.ScenarioNeedsReview, eval.Scenario)
	require.NotEmpty(t, eval.Actions)
}

func TestScenarioNeedsReviewOnLowConversion(t *testing.T) {
	conv := 0.001
	eval := EvaluateScenario(domain.Metrics{Spend: 500, Leads: 10, CPL: 50, ConversionRate: &conv}, DefaultThresholds())
	require.Equal(t, domain.ScenarioNeedsReview, eval.Scenario)
	require.NotEmpty(t, eval.Actions)
}

func TestScenarioScale(t *testing.T) {
	eval := EvaluateScenario(domain.Metrics{Spend: 300, Leads: 12, CPL: 25}, DefaultThresholds())
	require.Equal(t, domain.ScenarioScale, eval.Scenario)
	require.NotEmpty(t, eval.Actions)
}

func TestScenarioOnTrack(t *testing.T) {
	eval := EvaluateScenario(domain.Metrics{Spend: 500, Leads: 10, CPL: 50}, DefaultThresholds())
	require.Equal(t, domain.ScenarioOnTrack, eval.Scenario)
	require.Empty(t, eval.Actions)
}

func TestScenarioDeterministic(t *testing.T) {
	m := domain.Metrics{Spend: 300, Leads: 12, CPL: 25}
	require.Equal(t, EvaluateScenario(m, DefaultThresholds()), EvaluateScenario(m, DefaultThresholds()))
}

// Partial tenant overrides only replace the fields they set; the rest
// fall back to the defaults.
func TestScenarioPartialOverride(t *testing.T) {
	th := domain.ScenarioThresholds{TargetCPL: 20}
	eval := EvaluateScenario(domain.Metrics{Spend: 250, Leads: 0, CPL: 40}, th)
	require.Equal(t, domain.ScenarioStopLoss, eval.Scenario)
}

func TestScenarioActionsContract(t *testing.T) {
	th := DefaultThresholds()
	cases := []domain.Metrics{
		{Spend: 250, Leads: 0, CPL: 200},
		{Spend: 5, Leads: 0, CPL: 5},
		{Spend: 300, Leads: 12, CPL: 25},
		{Spend: 500, Leads: 10, CPL: 50},
	}
	for _, m := range cases {
		eval := EvaluateScenario(m, th)
		if eval.Scenario != domain.ScenarioOnTrack {
			require.NotEmpty(t, eval.Actions, "scenario %s", eval.Scenario)
		}
	}
}

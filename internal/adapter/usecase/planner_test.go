package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"adhelm/internal/core/domain"
	"adhelm/internal/core/port"
)

func testBlueprint() domain.StrategicBlueprint {
	return domain.StrategicBlueprint{
		ID:             "bp-1",
		TenantID:       "t-1",
		TargetLocation: "Dubai",
		Audience:       "Investors",
		Goal:           "Lead Generation",
		Language:       "English",
		Summary:        "Off-plan waterfront apartments for overseas buyers.",
	}
}

func testPlanInput(t *testing.T) port.PlanInput {
	t.Helper()
	occ, err := EvaluateOccalizer(domain.ModeTop)
	require.NoError(t, err)
	return port.PlanInput{
		Blueprint:  testBlueprint(),
		Occalizer:  occ,
		BudgetCaps: domain.BudgetCaps{Daily: 100, Total: 3000},
	}
}

func TestBuildPlanValidatesBudgets(t *testing.T) {
	cases := []struct {
		name string
		caps domain.BudgetCaps
	}{
		{"zero daily", domain.BudgetCaps{Daily: 0, Total: 3000}},
		{"negative daily", domain.BudgetCaps{Daily: -5, Total: 3000}},
		{"zero total", domain.BudgetCaps{Daily: 100, Total: 0}},
		{"daily above total", domain.BudgetCaps{Daily: 5000, Total: 3000}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := testPlanInput(t)
			in.BudgetCaps = tc.caps
			_, err := BuildPlan(in)
			require.Error(t, err)
			require.True(t, domain.IsValidation(err))
		})
	}
}

func TestBuildPlanIdempotent(t *testing.T) {
	in := testPlanInput(t)
	a, err := BuildPlan(in)
	require.NoError(t, err)
	b, err := BuildPlan(in)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestBuildPlanDerivesFromBlueprint(t *testing.T) {
	plan, err := BuildPlan(testPlanInput(t))
	require.NoError(t, err)

	require.Len(t, plan.LaunchChecklist, 3)
	require.NotEmpty(t, plan.KeywordGroups)

	var all []string
	for _, g := range plan.KeywordGroups {
		require.NotEmpty(t, g.Category)
		require.NotEmpty(t, g.Terms)
		all = append(all, g.Terms...)
	}
	joined := strings.ToLower(strings.Join(all, " "))
	require.Contains(t, joined, "dubai")
	require.Contains(t, joined, "investors")

	require.NotEmpty(t, plan.Creative.Headlines)
	require.NotEmpty(t, plan.Creative.Descriptions)
	require.Equal(t, domain.ModeTop, plan.Occalizer.Mode)
	require.Equal(t, int64(100), plan.BudgetCaps.Daily)
}

func TestBuildPlanRejectsUnknownMode(t *testing.T) {
	in := testPlanInput(t)
	in.Occalizer.Mode = "WILD"
	_, err := BuildPlan(in)
	require.Error(t, err)
	require.True(t, domain.IsValidation(err))
}

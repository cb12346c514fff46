package usecase

import (
	"fmt"
	"strings"

	"adhelm/internal/core/domain"
	"adhelm/internal/core/port"
)

// BuildPlan combines a strategic blueprint, an occalizer result and
// budget caps into a concrete campaign plan. The transformation is pure
// and deterministic: identical inputs always yield identical keyword
// groups, so plan generation is idempotent.
func BuildPlan(in port.PlanInput) (domain.CampaignPlan, error) {
	if err := validateCaps(in.BudgetCaps); err != nil {
		return domain.CampaignPlan{}, err
	}
	if !in.Occalizer.Mode.Valid() {
		return domain.CampaignPlan{}, domain.ValidationError{Field: "occalizer.mode", Reason: "unknown occalizer mode " + string(in.Occalizer.Mode)}
	}

	bp := in.Blueprint
	plan := domain.CampaignPlan{
		Summary:       planSummary(in.SiteIntent, bp),
		KeywordGroups: keywordGroups(bp),
		Creative:      creativeSkeleton(bp),
		TargetingNotes: []string{
			fmt.Sprintf("Geo-target ads to %s and nearby areas.", bp.TargetLocation),
			fmt.Sprintf("Serve creatives in %s.", bp.Language),
			fmt.Sprintf("Bid per occalizer mode %s (aggressiveness %.2f, expected CPL %.0f-%.0f).",
				in.Occalizer.Mode, in.Occalizer.BiddingAggressiveness, in.Occalizer.ExpectedCPL.Low, in.Occalizer.ExpectedCPL.High),
		},
		LaunchChecklist: []string{
			"Verify conversion tracking fires on the lead form.",
			"Run the landing-page audit and clear blocking errors.",
			fmt.Sprintf("Confirm budget caps: %d daily / %d total.", in.BudgetCaps.Daily, in.BudgetCaps.Total),
		},
		BudgetCaps: in.BudgetCaps,
		Occalizer:  in.Occalizer,
	}
	return plan, nil
}

func validateCaps(caps domain.BudgetCaps) error {
	switch {
	case caps.Daily <= 0:
		return domain.ValidationError{Field: "budget_caps.daily", Reason: "must be positive"}
	case caps.Total <= 0:
		return domain.ValidationError{Field: "budget_caps.total", Reason: "must be positive"}
	case caps.Daily > caps.Total:
		return domain.ValidationError{Field: "budget_caps", Reason: "daily cap exceeds total cap"}
	}
	return nil
}

// keywordGroups derives categorised search terms from the blueprint's
// location, audience and goal fields. Purely template-driven.
func keywordGroups(bp domain.StrategicBlueprint) []domain.KeywordGroup {
	groups := []domain.KeywordGroup{
		{
			Category: "location",
			Terms: []string{
				fmt.Sprintf("%s real estate", bp.TargetLocation),
				fmt.Sprintf("property for sale %s", bp.TargetLocation),
				fmt.Sprintf("new developments %s", bp.TargetLocation),
			},
		},
		{
			Category: "audience",
			Terms: []string{
				fmt.Sprintf("%s property for %s", bp.TargetLocation, strings.ToLower(bp.Audience)),
				fmt.Sprintf("%s guide %s", strings.ToLower(bp.Audience), bp.TargetLocation),
			},
		},
	}
	if bp.Goal != "" {
		groups = append(groups, domain.KeywordGroup{
			Category: "goal",
			Terms: []string{
				fmt.Sprintf("%s %s", strings.ToLower(bp.Goal), bp.TargetLocation),
				fmt.Sprintf("best %s agency %s", strings.ToLower(bp.Goal), bp.TargetLocation),
			},
		})
	}
	return groups
}

func creativeSkeleton(bp domain.StrategicBlueprint) domain.CreativeSkeleton {
	return domain.CreativeSkeleton{
		Headlines: []string{
			fmt.Sprintf("%s in %s", bp.Goal, bp.TargetLocation),
			fmt.Sprintf("%s: opportunities for %s", bp.TargetLocation, bp.Audience),
		},
		Descriptions: []string{
			firstNonEmpty(bp.Summary, fmt.Sprintf("Reach %s looking at %s.", bp.Audience, bp.TargetLocation)),
			fmt.Sprintf("Talk to our %s specialists today.", bp.TargetLocation),
		},
	}
}

func planSummary(siteIntent string, bp domain.StrategicBlueprint) string {
	parts := make([]string, 0, 2)
	if siteIntent != "" {
		parts = append(parts, siteIntent)
	}
	if bp.Summary != "" {
		parts = append(parts, bp.Summary)
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%s campaign targeting %s in %s", bp.Goal, bp.Audience, bp.TargetLocation)
	}
	return strings.Join(parts, " - ")
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

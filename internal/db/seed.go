package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"adhelm/internal/adapter/usecase"
	"adhelm/internal/core/domain"
	"adhelm/internal/core/port"
)

// Seed inserts demo data: one blueprint and one draft campaign per
// sample tenant, plus a tenant-level scenario override. Intended for
// local development only.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	samples := []domain.StrategicBlueprint{
		{
			TenantID:       "tenant-demo-1",
			TargetLocation: "Dubai",
			Audience:       "Investors",
			Goal:           "Lead Generation",
			Language:       "English",
			Summary:        "Off-plan waterfront apartments aimed at overseas investors.",
			Checklist:      []string{"Collect brand assets", "Approve ad copy"},
			TrackingSetup:  []string{"Install pixel", "Verify conversion event"},
		},
		{
			TenantID:       "tenant-demo-2",
			TargetLocation: "Lisbon",
			Audience:       "Expats",
			Goal:           "Viewings",
			Language:       "English",
			Summary:        "City-centre renovated flats for relocating professionals.",
			Checklist:      []string{"Translate landing page"},
			TrackingSetup:  []string{"Install pixel"},
		},
	}

	modes := []domain.OccalizerMode{domain.ModeTop, domain.ModeFair}
	for i, bp := range samples {
		bp.ID = uuid.NewString()
		bp.CreatedAt = time.Now().UTC()
		checklist, _ := json.Marshal(bp.Checklist)
		tracking, _ := json.Marshal(bp.TrackingSetup)
		_, err := pool.Exec(ctx, `INSERT INTO blueprints
(id, tenant_id, target_location, audience, goal, language, summary, checklist, tracking_setup, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) ON CONFLICT DO NOTHING`,
			bp.ID, bp.TenantID, bp.TargetLocation, bp.Audience, bp.Goal, bp.Language, bp.Summary, checklist, tracking, bp.CreatedAt)
		if err != nil {
			return fmt.Errorf("seed blueprint: %w", err)
		}

		occ, err := usecase.EvaluateOccalizer(modes[i])
		if err != nil {
			return err
		}
		caps := domain.BudgetCaps{Daily: 100, Total: 3000}
		plan, err := usecase.BuildPlan(port.PlanInput{
			Blueprint:  bp,
			Occalizer:  occ,
			BudgetCaps: caps,
		})
		if err != nil {
			return err
		}
		planRaw, err := json.Marshal(plan)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		_, err = pool.Exec(ctx, `INSERT INTO campaigns
(id, tenant_id, blueprint_id, status, occalizer_mode, daily_budget, total_budget, plan, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) ON CONFLICT DO NOTHING`,
			uuid.NewString(), bp.TenantID, bp.ID, domain.StatusDraft, modes[i], caps.Daily, caps.Total, planRaw, now, now)
		if err != nil {
			return fmt.Errorf("seed campaign: %w", err)
		}
	}

	// one tenant runs with a tighter CPL target than the defaults
	override := usecase.DefaultThresholds()
	override.TargetCPL = 35
	raw, err := json.Marshal(override)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `INSERT INTO scenario_configs (tenant_id, data, updated_at)
VALUES ($1, $2, now()) ON CONFLICT (tenant_id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		"tenant-demo-1", raw)
	if err != nil {
		return fmt.Errorf("seed scenario config: %w", err)
	}
	return nil
}

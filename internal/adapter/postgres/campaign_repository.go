package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adhelm/internal/core/domain"
	"adhelm/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
// Plan snapshots, audits, checklists and threshold overrides are stored
// as JSONB columns.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// GetBlueprint returns the strategic blueprint by id.
func (r *CampaignRepository) GetBlueprint(ctx context.Context, id string) (*domain.StrategicBlueprint, error) {
	var (
		bp                        domain.StrategicBlueprint
		checklistRaw, trackingRaw []byte
	)
	err := r.pool.QueryRow(ctx, `SELECT id, tenant_id, target_location, audience, goal, language, summary, checklist, tracking_setup, created_at
FROM blueprints WHERE id = $1`, id).
		Scan(&bp.ID, &bp.TenantID, &bp.TargetLocation, &bp.Audience, &bp.Goal, &bp.Language, &bp.Summary, &checklistRaw, &trackingRaw, &bp.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(checklistRaw, &bp.Checklist); err != nil {
		return nil, err
	}
	if err = json.Unmarshal(trackingRaw, &bp.TrackingSetup); err != nil {
		return nil, err
	}
	return &bp, nil
}

// CreateCampaign persists a freshly built campaign with its plan snapshot.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	planRaw, err := json.Marshal(c.Plan)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO campaigns
(id, tenant_id, blueprint_id, status, occalizer_mode, daily_budget, total_budget, plan, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		c.ID, c.TenantID, c.BlueprintID, c.Status, c.OccalizerMode, c.BudgetCaps.Daily, c.BudgetCaps.Total, planRaw, c.CreatedAt, c.UpdatedAt)
	return err
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	var (
		c          domain.Campaign
		planRaw    []byte
		refinerRaw []byte
	)
	err := r.pool.QueryRow(ctx, `SELECT id, tenant_id, blueprint_id, status, occalizer_mode, daily_budget, total_budget, plan, refiner, created_at, updated_at
FROM campaigns WHERE id = $1`, id).
		Scan(&c.ID, &c.TenantID, &c.BlueprintID, &c.Status, &c.OccalizerMode, &c.BudgetCaps.Daily, &c.BudgetCaps.Total, &planRaw, &refinerRaw, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if planRaw != nil {
		var plan domain.CampaignPlan
		if err = json.Unmarshal(planRaw, &plan); err != nil {
			return nil, err
		}
		c.Plan = &plan
	}
	if refinerRaw != nil {
		var res domain.RefinerResult
		if err = json.Unmarshal(refinerRaw, &res); err != nil {
			return nil, err
		}
		c.Refiner = &res
	}
	return &c, nil
}

// UpdateCampaignStatus writes the new status conditionally on the
// current one (optimistic status guard). It returns false when no row
// matched, i.e. the status changed under the caller.
func (r *CampaignRepository) UpdateCampaignStatus(ctx context.Context, id string, from, to domain.CampaignStatus) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET status = $1, updated_at = now() WHERE id = $2 AND status = $3`, to, id, from)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// SetCampaignAudit stores the refiner result on a campaign.
func (r *CampaignRepository) SetCampaignAudit(ctx context.Context, id string, res domain.RefinerResult) error {
	raw, err := json.Marshal(res)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `UPDATE campaigns SET refiner = $1, updated_at = now() WHERE id = $2`, raw, id)
	return err
}

// CreateDeployment persists one sync attempt with its plan snapshot.
func (r *CampaignRepository) CreateDeployment(ctx context.Context, d *domain.Deployment) error {
	payload, err := json.Marshal(d.Payload)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO deployments (id, campaign_id, status, payload, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6)`,
		d.ID, d.CampaignID, d.Status, payload, d.CreatedAt, d.UpdatedAt)
	return err
}

// GetDeployment returns a deployment by id.
func (r *CampaignRepository) GetDeployment(ctx context.Context, id string) (*domain.Deployment, error) {
	var (
		d       domain.Deployment
		payload []byte
	)
	err := r.pool.QueryRow(ctx, `SELECT id, campaign_id, status, payload, created_at, updated_at FROM deployments WHERE id = $1`, id).
		Scan(&d.ID, &d.CampaignID, &d.Status, &payload, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err = json.Unmarshal(payload, &d.Payload); err != nil {
		return nil, err
	}
	return &d, nil
}

// UpdateDeploymentStatus sets a deployment's status.
func (r *CampaignRepository) UpdateDeploymentStatus(ctx context.Context, id string, status domain.DeploymentStatus) error {
	_, err := r.pool.Exec(ctx, `UPDATE deployments SET status = $1, updated_at = now() WHERE id = $2`, status, id)
	return err
}

// RecordLearningSignal appends one evaluated outcome to the log.
func (r *CampaignRepository) RecordLearningSignal(ctx context.Context, s *domain.LearningSignal) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO learning_signals
(id, tenant_id, campaign_id, cpl, conversion_rate, landing_page_score, occalizer_mode, scenario, recorded_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		s.ID, s.TenantID, s.CampaignID, s.CPL, s.ConversionRate, s.LandingPageScore, s.OccalizerMode, s.Scenario, s.RecordedAt)
	return err
}

// ListLearningSignals returns signals for a tenant and period, newest first.
func (r *CampaignRepository) ListLearningSignals(ctx context.Context, req port.SignalsReq) ([]domain.LearningSignal, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, tenant_id, campaign_id, cpl, conversion_rate, landing_page_score, occalizer_mode, scenario, recorded_at
FROM learning_signals
WHERE tenant_id = $1 AND recorded_at >= $2 AND recorded_at <= $3
ORDER BY recorded_at DESC`, req.TenantID, req.From, req.To)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LearningSignal, error) {
		var s domain.LearningSignal
		err := row.Scan(&s.ID, &s.TenantID, &s.CampaignID, &s.CPL, &s.ConversionRate, &s.LandingPageScore, &s.OccalizerMode, &s.Scenario, &s.RecordedAt)
		return s, err
	})
}

// GetScenarioConfig returns the tenant's threshold overrides, if any.
func (r *CampaignRepository) GetScenarioConfig(ctx context.Context, tenantID string) (*domain.ScenarioThresholds, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx, `SELECT data FROM scenario_configs WHERE tenant_id = $1`, tenantID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var th domain.ScenarioThresholds
	if err = json.Unmarshal(raw, &th); err != nil {
		return nil, err
	}
	return &th, nil
}

package port

import (
	"context"

	"adhelm/internal/core/domain"
)

// CampaignUseCase defines the business operations exposed by the
// decision engine. This interface is the primary port into the
// application domain; the HTTP layer is a thin adapter over it.
type CampaignUseCase interface {
	// EvaluateOccalizer maps a risk mode to its bidding aggressiveness
	// and expected CPL range. Unknown modes fail with a ValidationError.
	EvaluateOccalizer(mode domain.OccalizerMode) (domain.OccalizerResult, error)

	// BuildPlan derives a campaign plan from a blueprint, an occalizer
	// result and budget caps. It is a pure transformation; persisting
	// the campaign is CreateCampaign's job.
	BuildPlan(in PlanInput) (domain.CampaignPlan, error)

	// CreateCampaign loads the blueprint, builds the plan and persists a
	// new campaign in status draft.
	CreateCampaign(ctx context.Context, req CreateCampaignReq) (*domain.Campaign, error)

	// RunRefiner audits a landing page's structural readiness. Pure;
	// running it twice on an unchanged page returns an identical result.
	RunRefiner(page domain.LandingPage) domain.RefinerResult

	// AuditCampaignPage runs the refiner and attaches the result to a
	// draft campaign. Re-auditing is only allowed while the campaign is
	// still in draft.
	AuditCampaignPage(ctx context.Context, campaignID string, page domain.LandingPage) (*domain.RefinerResult, error)

	// EvaluateScenario classifies live metrics against thresholds. Pure
	// function of its inputs.
	EvaluateScenario(m domain.Metrics, th domain.ScenarioThresholds) domain.Evaluation

	// ApproveCampaign moves draft -> approved, provided a plan exists and
	// the attached audit (if any) has no blocking errors.
	ApproveCampaign(ctx context.Context, id string) (*domain.Campaign, error)

	// SyncCampaign records a new deployment and moves the campaign to
	// deploying. Allowed from approved, deploying and active; syncing a
	// draft fails with an InvalidTransitionError.
	SyncCampaign(ctx context.Context, id string) (*domain.Deployment, error)

	// ConfirmDeployment records the external platform's verdict for one
	// deployment. On success the campaign moves deploying -> active; on
	// failure the deployment is marked failed and the campaign stays in
	// deploying for a retry sync.
	ConfirmDeployment(ctx context.Context, deploymentID string, ok bool) (*domain.Campaign, error)

	// PauseCampaign moves active -> paused.
	PauseCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	// ResumeCampaign moves paused -> active.
	ResumeCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	// CompleteCampaign retires a campaign from active or paused.
	CompleteCampaign(ctx context.Context, id string) (*domain.Campaign, error)

	// ReportMetrics classifies a live metrics report for a campaign using
	// the tenant's thresholds (falling back to configured defaults) and,
	// unless the report is simulated, appends a learning signal.
	ReportMetrics(ctx context.Context, req MetricsReport) (*domain.Evaluation, error)

	// ListLearningSignals returns the recorded outcomes for a tenant and
	// period, newest first.
	ListLearningSignals(ctx context.Context, req SignalsReq) ([]domain.LearningSignal, error)
}

// PlanInput carries everything the plan builder needs.
type PlanInput struct {
	SiteIntent string
	Blueprint  domain.StrategicBlueprint
	Occalizer  domain.OccalizerResult
	BudgetCaps domain.BudgetCaps
}

// CreateCampaignReq is the inbound DTO for CreateCampaign.
type CreateCampaignReq struct {
	TenantID    string
	BlueprintID string
	SiteIntent  string
	Mode        domain.OccalizerMode
	BudgetCaps  domain.BudgetCaps
}

// MetricsReport is one live performance report for a campaign. Simulated
// reports are classified but never recorded in the learning-signal log.
type MetricsReport struct {
	CampaignID string
	Metrics    domain.Metrics
	Simulated  bool
}

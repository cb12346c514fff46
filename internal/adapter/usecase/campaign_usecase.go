package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"adhelm/internal/core/domain"
	"adhelm/internal/core/port"
)

// CampaignService implements port.CampaignUseCase. It orchestrates the
// pure evaluators (occalizer, plan builder, refiner, scenario) and is
// the only component that touches persistent state, mediated through
// the repository port. Concurrent conflicting transitions are handled
// with optimistic status guards rather than locking.
type CampaignService struct {
	repo port.CampaignRepository

	// defaults are the scenario thresholds applied when a tenant has no
	// override stored.
	defaults domain.ScenarioThresholds
}

// NewCampaignService creates a new usecase with the provided repository
// and default scenario thresholds. Zero-valued threshold fields fall
// back to the built-in defaults.
func NewCampaignService(repo port.CampaignRepository, defaults domain.ScenarioThresholds) *CampaignService {
	return &CampaignService{repo: repo, defaults: fillThresholds(defaults)}
}

// EvaluateOccalizer implements port.CampaignUseCase.
func (s *CampaignService) EvaluateOccalizer(mode domain.OccalizerMode) (domain.OccalizerResult, error) {
	return EvaluateOccalizer(mode)
}

// BuildPlan implements port.CampaignUseCase.
func (s *CampaignService) BuildPlan(in port.PlanInput) (domain.CampaignPlan, error) {
	return BuildPlan(in)
}

// RunRefiner implements port.CampaignUseCase.
func (s *CampaignService) RunRefiner(page domain.LandingPage) domain.RefinerResult {
	return RunRefiner(page)
}

// EvaluateScenario implements port.CampaignUseCase.
func (s *CampaignService) EvaluateScenario(m domain.Metrics, th domain.ScenarioThresholds) domain.Evaluation {
	return EvaluateScenario(m, th)
}

// CreateCampaign loads the blueprint, builds the plan and persists a new
// draft campaign owned by the requesting tenant.
func (s *CampaignService) CreateCampaign(ctx context.Context, req port.CreateCampaignReq) (*domain.Campaign, error) {
	occ, err := EvaluateOccalizer(req.Mode)
	if err != nil {
		return nil, err
	}
	bp, err := s.repo.GetBlueprint(ctx, req.BlueprintID)
	if err != nil {
		return nil, depErr("get blueprint", err)
	}
	if bp == nil {
		return nil, domain.NotFoundError{Kind: "blueprint", ID: req.BlueprintID}
	}
	plan, err := BuildPlan(port.PlanInput{
		SiteIntent: req.SiteIntent,
		Blueprint:  *bp,
		Occalizer:  occ,
		BudgetCaps: req.BudgetCaps,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	c := &domain.Campaign{
		ID:            uuid.NewString(),
		TenantID:      req.TenantID,
		BlueprintID:   bp.ID,
		Status:        domain.StatusDraft,
		OccalizerMode: req.Mode,
		BudgetCaps:    req.BudgetCaps,
		Plan:          &plan,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err = s.repo.CreateCampaign(ctx, c); err != nil {
		return nil, depErr("create campaign", err)
	}
	return c, nil
}

// AuditCampaignPage runs the refiner against the page and stores the
// result on the campaign. The plan and its audit are fixed once the
// campaign leaves draft, so re-audits of non-draft campaigns fail.
func (s *CampaignService) AuditCampaignPage(ctx context.Context, campaignID string, page domain.LandingPage) (*domain.RefinerResult, error) {
	c, err := s.getCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c.Status != domain.StatusDraft {
		return nil, domain.ValidationError{Field: "campaign", Reason: "audit can only be attached while the campaign is in draft"}
	}
	res := RunRefiner(page)
	if err = s.repo.SetCampaignAudit(ctx, c.ID, res); err != nil {
		return nil, depErr("set campaign audit", err)
	}
	return &res, nil
}

// ApproveCampaign moves a draft campaign to approved. A plan must exist
// and the attached audit, when present, must have no blocking errors.
func (s *CampaignService) ApproveCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := s.getCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.Status.CanTransitionTo(domain.StatusApproved) {
		return nil, domain.InvalidTransitionError{CampaignID: c.ID, Current: c.Status, Requested: domain.StatusApproved}
	}
	if c.Plan == nil {
		return nil, domain.InvalidTransitionError{
			CampaignID: c.ID, Current: c.Status, Requested: domain.StatusApproved,
			Reason: "campaign has no plan",
		}
	}
	if c.Refiner != nil && !c.Refiner.Ready() {
		return nil, domain.InvalidTransitionError{
			CampaignID: c.ID, Current: c.Status, Requested: domain.StatusApproved,
			Reason: "landing-page audit has blocking errors",
		}
	}
	return s.applyTransition(ctx, c, domain.StatusApproved)
}

// SyncCampaign records one deployment attempt with a snapshot of the
// plan and moves the campaign to deploying. Re-sync is allowed without
// re-approval once initially approved. The campaign stays in deploying
// until an external confirmation arrives via ConfirmDeployment.
func (s *CampaignService) SyncCampaign(ctx context.Context, id string) (*domain.Deployment, error) {
	c, err := s.getCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.Status.CanTransitionTo(domain.StatusDeploying) {
		return nil, domain.InvalidTransitionError{CampaignID: c.ID, Current: c.Status, Requested: domain.StatusDeploying}
	}
	if c.Plan == nil {
		return nil, domain.InvalidTransitionError{
			CampaignID: c.ID, Current: c.Status, Requested: domain.StatusDeploying,
			Reason: "campaign has no plan",
		}
	}

	now := time.Now().UTC()
	d := &domain.Deployment{
		ID:         uuid.NewString(),
		CampaignID: c.ID,
		Status:     domain.DeploymentQueued,
		Payload:    *c.Plan,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err = s.repo.CreateDeployment(ctx, d); err != nil {
		return nil, depErr("create deployment", err)
	}
	if c.Status != domain.StatusDeploying {
		if _, err = s.applyTransition(ctx, c, domain.StatusDeploying); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// ConfirmDeployment records the external platform's verdict. A confirmed
// deployment activates a deploying campaign; a failed one leaves the
// campaign in deploying so the caller can re-sync.
func (s *CampaignService) ConfirmDeployment(ctx context.Context, deploymentID string, ok bool) (*domain.Campaign, error) {
	d, err := s.repo.GetDeployment(ctx, deploymentID)
	if err != nil {
		return nil, depErr("get deployment", err)
	}
	if d == nil {
		return nil, domain.NotFoundError{Kind: "deployment", ID: deploymentID}
	}
	if d.Status.Terminal() {
		return nil, domain.ValidationError{Field: "deployment", Reason: "deployment is already " + string(d.Status)}
	}

	status := domain.DeploymentFailed
	if ok {
		status = domain.DeploymentConfirmed
	}
	if err = s.repo.UpdateDeploymentStatus(ctx, d.ID, status); err != nil {
		return nil, depErr("update deployment status", err)
	}

	c, err := s.getCampaign(ctx, d.CampaignID)
	if err != nil {
		return nil, err
	}
	if ok && c.Status == domain.StatusDeploying {
		return s.applyTransition(ctx, c, domain.StatusActive)
	}
	return c, nil
}

// PauseCampaign implements port.CampaignUseCase.
func (s *CampaignService) PauseCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	return s.transition(ctx, id, domain.StatusPaused)
}

// ResumeCampaign implements port.CampaignUseCase.
func (s *CampaignService) ResumeCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	return s.transition(ctx, id, domain.StatusActive)
}

// CompleteCampaign implements port.CampaignUseCase.
func (s *CampaignService) CompleteCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	return s.transition(ctx, id, domain.StatusCompleted)
}

// ReportMetrics classifies a live metrics report using the tenant's
// thresholds and appends a learning signal unless the report was
// simulated. The signal's landing-page score falls back to the stored
// audit score when the report carries none.
func (s *CampaignService) ReportMetrics(ctx context.Context, req port.MetricsReport) (*domain.Evaluation, error) {
	c, err := s.getCampaign(ctx, req.CampaignID)
	if err != nil {
		return nil, err
	}

	th := s.defaults
	override, err := s.repo.GetScenarioConfig(ctx, c.TenantID)
	if err != nil {
		return nil, depErr("get scenario config", err)
	}
	if override != nil {
		th = *override
	}

	eval := EvaluateScenario(req.Metrics, th)

	if !req.Simulated {
		lpScore := req.Metrics.LandingPageScore
		if lpScore == nil && c.Refiner != nil {
			score := c.Refiner.Score
			lpScore = &score
		}
		sig := &domain.LearningSignal{
			ID:               uuid.NewString(),
			TenantID:         c.TenantID,
			CampaignID:       c.ID,
			CPL:              req.Metrics.CPL,
			ConversionRate:   req.Metrics.ConversionRate,
			LandingPageScore: lpScore,
			OccalizerMode:    c.OccalizerMode,
			Scenario:         eval.Scenario,
			RecordedAt:       time.Now().UTC(),
		}
		if err = s.repo.RecordLearningSignal(ctx, sig); err != nil {
			return nil, depErr("record learning signal", err)
		}
	}
	return &eval, nil
}

// ListLearningSignals implements port.CampaignUseCase.
func (s *CampaignService) ListLearningSignals(ctx context.Context, req port.SignalsReq) ([]domain.LearningSignal, error) {
	signals, err := s.repo.ListLearningSignals(ctx, req)
	if err != nil {
		return nil, depErr("list learning signals", err)
	}
	return signals, nil
}

func (s *CampaignService) getCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := s.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, depErr("get campaign", err)
	}
	if c == nil {
		return nil, domain.NotFoundError{Kind: "campaign", ID: id}
	}
	return c, nil
}

// transition performs a guard-checked status change for the plain
// lifecycle edges (pause, resume, complete).
func (s *CampaignService) transition(ctx context.Context, id string, to domain.CampaignStatus) (*domain.Campaign, error) {
	c, err := s.getCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.Status.CanTransitionTo(to) {
		return nil, domain.InvalidTransitionError{CampaignID: c.ID, Current: c.Status, Requested: to}
	}
	return s.applyTransition(ctx, c, to)
}

// applyTransition writes the status change with an optimistic guard on
// the previously read status. A failed guard means another caller moved
// the campaign concurrently; that surfaces as a transition conflict.
func (s *CampaignService) applyTransition(ctx context.Context, c *domain.Campaign, to domain.CampaignStatus) (*domain.Campaign, error) {
	ok, err := s.repo.UpdateCampaignStatus(ctx, c.ID, c.Status, to)
	if err != nil {
		return nil, depErr("update campaign status", err)
	}
	if !ok {
		return nil, domain.InvalidTransitionError{
			CampaignID: c.ID, Current: c.Status, Requested: to,
			Reason: "campaign status changed concurrently",
		}
	}
	c.Status = to
	c.UpdatedAt = time.Now().UTC()
	return c, nil
}

func depErr(op string, err error) error {
	return domain.DependencyError{Op: op, Err: err}
}

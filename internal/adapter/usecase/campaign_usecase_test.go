package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"adhelm/internal/core/domain"
	"adhelm/internal/core/port"
)

// fakeRepo is an in-memory port.CampaignRepository for usecase tests.
// When failWith is set, every call returns that error.
type fakeRepo struct {
	blueprints  map[string]domain.StrategicBlueprint
	campaigns   map[string]*domain.Campaign
	deployments map[string]*domain.Deployment
	signals     []domain.LearningSignal
	configs     map[string]domain.ScenarioThresholds
	failWith    error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		blueprints:  map[string]domain.StrategicBlueprint{},
		campaigns:   map[string]*domain.Campaign{},
		deployments: map[string]*domain.Deployment{},
		configs:     map[string]domain.ScenarioThresholds{},
	}
}

func (r *fakeRepo) GetBlueprint(_ context.Context, id string) (*domain.StrategicBlueprint, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	bp, ok := r.blueprints[id]
	if !ok {
		return nil, nil
	}
	return &bp, nil
}

func (r *fakeRepo) CreateCampaign(_ context.Context, c *domain.Campaign) error {
	if r.failWith != nil {
		return r.failWith
	}
	cp := *c
	r.campaigns[c.ID] = &cp
	return nil
}

func (r *fakeRepo) GetCampaign(_ context.Context, id string) (*domain.Campaign, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	c, ok := r.campaigns[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeRepo) UpdateCampaignStatus(_ context.Context, id string, from, to domain.CampaignStatus) (bool, error) {
	if r.failWith != nil {
		return false, r.failWith
	}
	c, ok := r.campaigns[id]
	if !ok || c.Status != from {
		return false, nil
	}
	c.Status = to
	return true, nil
}

func (r *fakeRepo) SetCampaignAudit(_ context.Context, id string, res domain.RefinerResult) error {
	if r.failWith != nil {
		return r.failWith
	}
	c, ok := r.campaigns[id]
	if !ok {
		return errors.New("no such campaign")
	}
	c.Refiner = &res
	return nil
}

func (r *fakeRepo) CreateDeployment(_ context.Context, d *domain.Deployment) error {
	if r.failWith != nil {
		return r.failWith
	}
	cp := *d
	r.deployments[d.ID] = &cp
	return nil
}

func (r *fakeRepo) GetDeployment(_ context.Context, id string) (*domain.Deployment, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	d, ok := r.deployments[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *fakeRepo) UpdateDeploymentStatus(_ context.Context, id string, status domain.DeploymentStatus) error {
	if r.failWith != nil {
		return r.failWith
	}
	d, ok := r.deployments[id]
	if !ok {
		return errors.New("no such deployment")
	}
	d.Status = status
	return nil
}

func (r *fakeRepo) RecordLearningSignal(_ context.Context, s *domain.LearningSignal) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.signals = append(r.signals, *s)
	return nil
}

func (r *fakeRepo) ListLearningSignals(_ context.Context, req port.SignalsReq) ([]domain.LearningSignal, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []domain.LearningSignal
	for _, s := range r.signals {
		if s.TenantID == req.TenantID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetScenarioConfig(_ context.Context, tenantID string) (*domain.ScenarioThresholds, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	th, ok := r.configs[tenantID]
	if !ok {
		return nil, nil
	}
	return &th, nil
}

func newService(repo *fakeRepo) *CampaignService {
	return NewCampaignService(repo, DefaultThresholds())
}

func createDraft(t *testing.T, svc *CampaignService, repo *fakeRepo) *domain.Campaign {
	t.Helper()
	bp := testBlueprint()
	repo.blueprints[bp.ID] = bp
	c, err := svc.CreateCampaign(context.Background(), port.CreateCampaignReq{
		TenantID:    bp.TenantID,
		BlueprintID: bp.ID,
		Mode:        domain.ModeTop,
		BudgetCaps:  domain.BudgetCaps{Daily: 100, Total: 3000},
	})
	require.NoError(t, err)
	return c
}

func TestCreateCampaignEndToEnd(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	c := createDraft(t, svc, repo)

	require.Equal(t, domain.StatusDraft, c.Status)
	require.Equal(t, domain.ModeTop, c.OccalizerMode)
	require.NotNil(t, c.Plan)
	require.Len(t, c.Plan.LaunchChecklist, 3)
	require.NotEmpty(t, c.Plan.KeywordGroups)

	stored, ok := repo.campaigns[c.ID]
	require.True(t, ok)
	require.Equal(t, domain.StatusDraft, stored.Status)
	require.Equal(t, domain.ModeTop, stored.OccalizerMode)
}

func TestCreateCampaignUnknownBlueprint(t *testing.T) {
	svc := newService(newFakeRepo())
	_, err := svc.CreateCampaign(context.Background(), port.CreateCampaignReq{
		BlueprintID: "missing",
		Mode:        domain.ModeFair,
		BudgetCaps:  domain.BudgetCaps{Daily: 10, Total: 100},
	})
	require.Error(t, err)
	require.True(t, domain.IsNotFound(err))
}

func TestSyncFromDraftFails(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	c := createDraft(t, svc, repo)

	_, err := svc.SyncCampaign(context.Background(), c.ID)
	require.Error(t, err)
	require.True(t, domain.IsInvalidTransition(err))

	var it domain.InvalidTransitionError
	require.ErrorAs(t, err, &it)
	require.Equal(t, domain.StatusDraft, it.Current)
	require.Equal(t, domain.StatusDeploying, it.Requested)
}

func TestSyncAllowedFromApprovedDeployingActive(t *testing.T) {
	for _, status := range []domain.CampaignStatus{domain.StatusApproved, domain.StatusDeploying, domain.StatusActive} {
		t.Run(string(status), func(t *testing.T) {
			repo := newFakeRepo()
			svc := newService(repo)
			c := createDraft(t, svc, repo)
			repo.campaigns[c.ID].Status = status

			d, err := svc.SyncCampaign(context.Background(), c.ID)
			require.NoError(t, err)
			require.Equal(t, domain.DeploymentQueued, d.Status)
			require.Equal(t, c.ID, d.CampaignID)
			require.Equal(t, domain.StatusDeploying, repo.campaigns[c.ID].Status)
		})
	}
}

func TestApproveRequiresCleanAudit(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	c := createDraft(t, svc, repo)

	// attach an audit of a page with no CTA and no lead form
	_, err := svc.AuditCampaignPage(context.Background(), c.ID, domain.LandingPage{ID: "p"})
	require.NoError(t, err)

	_, err = svc.ApproveCampaign(context.Background(), c.ID)
	require.Error(t, err)
	require.True(t, domain.IsInvalidTransition(err))

	// re-audit with a fixed page and approve
	_, err = svc.AuditCampaignPage(context.Background(), c.ID, completePage())
	require.NoError(t, err)

	approved, err := svc.ApproveCampaign(context.Background(), c.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusApproved, approved.Status)
}

func TestApproveWithoutAudit(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	c := createDraft(t, svc, repo)

	approved, err := svc.ApproveCampaign(context.Background(), c.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusApproved, approved.Status)
}

func TestAuditRejectedAfterDraft(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	c := createDraft(t, svc, repo)
	repo.campaigns[c.ID].Status = domain.StatusActive

	_, err := svc.AuditCampaignPage(context.Background(), c.ID, completePage())
	require.Error(t, err)
	require.True(t, domain.IsValidation(err))
}

func TestConfirmDeploymentActivates(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	c := createDraft(t, svc, repo)
	repo.campaigns[c.ID].Status = domain.StatusApproved

	d, err := svc.SyncCampaign(context.Background(), c.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusDeploying, repo.campaigns[c.ID].Status)

	updated, err := svc.ConfirmDeployment(context.Background(), d.ID, true)
	require.NoError(t, err)
	require.Equal(t, domain.StatusActive, updated.Status)
	require.Equal(t, domain.DeploymentConfirmed, repo.deployments[d.ID].Status)
}

func TestConfirmDeploymentFailureKeepsDeploying(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	c := createDraft(t, svc, repo)
	repo.campaigns[c.ID].Status = domain.StatusApproved

	d, err := svc.SyncCampaign(context.Background(), c.ID)
	require.NoError(t, err)

	updated, err := svc.ConfirmDeployment(context.Background(), d.ID, false)
	require.NoError(t, err)
	require.Equal(t, domain.StatusDeploying, updated.Status)
	require.Equal(t, domain.DeploymentFailed, repo.deployments[d.ID].Status)

	// a retry sync is still possible
	_, err = svc.SyncCampaign(context.Background(), c.ID)
	require.NoError(t, err)
}

func TestConfirmDeploymentTerminalRejected(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	c := createDraft(t, svc, repo)
	repo.campaigns[c.ID].Status = domain.StatusApproved

	d, err := svc.SyncCampaign(context.Background(), c.ID)
	require.NoError(t, err)
	_, err = svc.ConfirmDeployment(context.Background(), d.ID, true)
	require.NoError(t, err)

	_, err = svc.ConfirmDeployment(context.Background(), d.ID, true)
	require.Error(t, err)
	require.True(t, domain.IsValidation(err))
}

func TestPauseResumeComplete(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	c := createDraft(t, svc, repo)
	repo.campaigns[c.ID].Status = domain.StatusActive
	ctx := context.Background()

	paused, err := svc.PauseCampaign(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPaused, paused.Status)

	resumed, err := svc.ResumeCampaign(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusActive, resumed.Status)

	done, err := svc.CompleteCampaign(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCompleted, done.Status)

	// completed is terminal
	_, err = svc.ResumeCampaign(ctx, c.ID)
	require.Error(t, err)
	require.True(t, domain.IsInvalidTransition(err))
}

func TestReportMetricsAppendsSignal(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	c := createDraft(t, svc, repo)

	eval, err := svc.ReportMetrics(context.Background(), port.MetricsReport{
		CampaignID: c.ID,
		Metrics:    domain.Metrics{Spend: 250, Leads: 0, CPL: 120},
	})
	require.NoError(t, err)
	require.Equal(t, domain.ScenarioStopLoss, eval.Scenario)

	require.Len(t, repo.signals, 1)
	sig := repo.signals[0]
	require.Equal(t, c.ID, sig.CampaignID)
	require.Equal(t, c.TenantID, sig.TenantID)
	require.Equal(t, domain.ModeTop, sig.OccalizerMode)
	require.Equal(t, domain.ScenarioStopLoss, sig.Scenario)
	require.Equal(t, 120.0, sig.CPL)
}

func TestReportMetricsSimulatedSkipsSignal(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	c := createDraft(t, svc, repo)

	_, err := svc.ReportMetrics(context.Background(), port.MetricsReport{
		CampaignID: c.ID,
		Metrics:    domain.Metrics{Spend: 250, Leads: 0, CPL: 120},
		Simulated:  true,
	})
	require.NoError(t, err)
	require.Empty(t, repo.signals)
}

func TestReportMetricsUsesTenantOverride(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	c := createDraft(t, svc, repo)

	// with the default target of 50, CPL 45 is on track; the tenant's
	// tighter target of 20 makes it a stop-loss
	th := DefaultThresholds()
	th.TargetCPL = 20
	repo.configs[c.TenantID] = th

	eval, err := svc.ReportMetrics(context.Background(), port.MetricsReport{
		CampaignID: c.ID,
		Metrics:    domain.Metrics{Spend: 300, Leads: 1, CPL: 45},
		Simulated:  true,
	})
	require.NoError(t, err)
	require.Equal(t, domain.ScenarioStopLoss, eval.Scenario)
}

func TestReportMetricsFallsBackToAuditScore(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	c := createDraft(t, svc, repo)
	_, err := svc.AuditCampaignPage(context.Background(), c.ID, completePage())
	require.NoError(t, err)

	_, err = svc.ReportMetrics(context.Background(), port.MetricsReport{
		CampaignID: c.ID,
		Metrics:    domain.Metrics{Spend: 300, Leads: 12, CPL: 25},
	})
	require.NoError(t, err)
	require.Len(t, repo.signals, 1)
	require.NotNil(t, repo.signals[0].LandingPageScore)
	require.Equal(t, 100, *repo.signals[0].LandingPageScore)
}

func TestRepositoryFailureSurfacesAsDependencyError(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)
	c := createDraft(t, svc, repo)
	repo.failWith = errors.New("connection refused")

	_, err := svc.ApproveCampaign(context.Background(), c.ID)
	require.Error(t, err)
	require.True(t, domain.IsDependency(err))
}

func TestApproveUnknownCampaign(t *testing.T) {
	svc := newService(newFakeRepo())
	_, err := svc.ApproveCampaign(context.Background(), "missing")
	require.Error(t, err)
	require.True(t, domain.IsNotFound(err))
}

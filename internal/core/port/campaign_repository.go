package port

import (
	"context"
	"time"

	"adhelm/internal/core/domain"
)

// CampaignRepository defines the persistence layer for the decision
// engine. It is an outbound port in hexagonal architecture. Lookup
// methods return (nil, nil) when the record does not exist; the usecase
// layer converts that into a NotFoundError. Any other error is treated
// as dependency unavailability.
type CampaignRepository interface {
	// GetBlueprint returns the strategic blueprint by id.
	GetBlueprint(ctx context.Context, id string) (*domain.StrategicBlueprint, error)
	// CreateCampaign persists a freshly built campaign.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// GetCampaign returns a campaign by id.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	// UpdateCampaignStatus moves a campaign from one status to another.
	// The write is conditional on the current status still being `from`
	// (optimistic status guard); it returns false when the guard failed
	// because of a concurrent transition.
	UpdateCampaignStatus(ctx context.Context, id string, from, to domain.CampaignStatus) (bool, error)
	// SetCampaignAudit stores the refiner result on a campaign.
	SetCampaignAudit(ctx context.Context, id string, res domain.RefinerResult) error

	// CreateDeployment persists one sync attempt.
	CreateDeployment(ctx context.Context, d *domain.Deployment) error
	// GetDeployment returns a deployment by id.
	GetDeployment(ctx context.Context, id string) (*domain.Deployment, error)
	// UpdateDeploymentStatus sets a deployment's status. Deployments are
	// immutable once terminal; callers must check before writing.
	UpdateDeploymentStatus(ctx context.Context, id string, status domain.DeploymentStatus) error

	// RecordLearningSignal appends one evaluated outcome. The log is
	// write-once per record; no update or delete exists.
	RecordLearningSignal(ctx context.Context, s *domain.LearningSignal) error
	// ListLearningSignals returns signals for a tenant and period.
	ListLearningSignals(ctx context.Context, req SignalsReq) ([]domain.LearningSignal, error)

	// GetScenarioConfig returns the tenant's threshold overrides, or
	// (nil, nil) when the tenant has none.
	GetScenarioConfig(ctx context.Context, tenantID string) (*domain.ScenarioThresholds, error)
}

// SignalsReq selects learning signals by tenant and time period.
type SignalsReq struct {
	TenantID string
	From     time.Time
	To       time.Time
}

package domain

import "time"

// DeploymentStatus tracks one sync attempt against the external ad
// platform. Confirmed and failed are terminal.
type DeploymentStatus string

const (
	DeploymentQueued    DeploymentStatus = "queued"
	DeploymentConfirmed DeploymentStatus = "confirmed"
	DeploymentFailed    DeploymentStatus = "failed"
)

// Terminal reports whether the status may no longer change.
func (s DeploymentStatus) Terminal() bool {
	return s == DeploymentConfirmed || s == DeploymentFailed
}

// Deployment records one attempt to push a campaign plan to the external
// platform. A campaign may have several deployments (retries); the latest
// one is authoritative for status inference.
type Deployment struct {
	ID         string
	CampaignID string
	Status     DeploymentStatus
	// Payload is the plan snapshot that was pushed.
	Payload   CampaignPlan
	CreatedAt time.Time
	UpdatedAt time.Time
}

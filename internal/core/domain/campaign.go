package domain

import "time"

// CampaignStatus is the lifecycle state of a campaign. Statuses form a
// closed set and may only change along the transitions table below.
type CampaignStatus string

const (
	StatusDraft     CampaignStatus = "draft"
	StatusApproved  CampaignStatus = "approved"
	StatusDeploying CampaignStatus = "deploying"
	StatusActive    CampaignStatus = "active"
	StatusPaused    CampaignStatus = "paused"
	StatusCompleted CampaignStatus = "completed"
)

// transitions is the single source of truth for legal status changes.
// Re-sync keeps a deploying campaign in deploying, hence the self edge.
var transitions = map[CampaignStatus][]CampaignStatus{
	StatusDraft:     {StatusApproved},
	StatusApproved:  {StatusDeploying},
	StatusDeploying: {StatusDeploying, StatusActive},
	StatusActive:    {StatusDeploying, StatusPaused, StatusCompleted},
	StatusPaused:    {StatusActive, StatusCompleted},
	StatusCompleted: {},
}

// Valid reports whether s is a known campaign status.
func (s CampaignStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is legal.
func (s CampaignStatus) CanTransitionTo(next CampaignStatus) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// BudgetCaps holds the spend limits a plan was built against.
// Amounts are stored in integer currency units.
type BudgetCaps struct {
	Daily int64 `json:"daily"`
	Total int64 `json:"total"`
}

// Campaign is the central aggregate. Status is the only field that
// transitions after creation besides Refiner (set by the audit while the
// campaign is still in draft) and UpdatedAt.
type Campaign struct {
	ID            string
	TenantID      string
	BlueprintID   string
	Status        CampaignStatus
	OccalizerMode OccalizerMode
	BudgetCaps    BudgetCaps
	Plan          *CampaignPlan
	Refiner       *RefinerResult
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

package domain

import "time"

// StrategicBlueprint is the immutable strategic input a campaign plan is
// derived from. It is created once per campaign intent and read-only
// afterwards.
type StrategicBlueprint struct {
	ID             string
	TenantID       string
	TargetLocation string
	Audience       string
	Goal           string
	Language       string
	Summary        string
	// Checklist holds free-text pre-flight tasks the marketer defined.
	Checklist []string
	// TrackingSetup holds the tracking/analytics setup steps.
	TrackingSetup []string
	CreatedAt     time.Time
}

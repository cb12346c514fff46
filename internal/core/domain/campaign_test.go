package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusTransitionTable(t *testing.T) {
	allowed := []struct{ from, to CampaignStatus }{
		{StatusDraft, StatusApproved},
		{StatusApproved, StatusDeploying},
		{StatusDeploying, StatusDeploying},
		{StatusDeploying, StatusActive},
		{StatusActive, StatusDeploying},
		{StatusActive, StatusPaused},
		{StatusActive, StatusCompleted},
		{StatusPaused, StatusActive},
		{StatusPaused, StatusCompleted},
	}
	for _, tr := range allowed {
		require.True(t, tr.from.CanTransitionTo(tr.to), "%s -> %s should be allowed", tr.from, tr.to)
	}

	denied := []struct{ from, to CampaignStatus }{
		{StatusDraft, StatusDeploying},
		{StatusDraft, StatusActive},
		{StatusApproved, StatusActive},
		{StatusApproved, StatusDraft},
		{StatusPaused, StatusDeploying},
		{StatusCompleted, StatusActive},
		{StatusCompleted, StatusPaused},
	}
	for _, tr := range denied {
		require.False(t, tr.from.CanTransitionTo(tr.to), "%s -> %s should be denied", tr.from, tr.to)
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []CampaignStatus{StatusDraft, StatusApproved, StatusDeploying, StatusActive, StatusPaused, StatusCompleted} {
		require.True(t, s.Valid())
	}
	require.False(t, CampaignStatus("archived").Valid())
}

func TestErrorClassHelpers(t *testing.T) {
	ve := ValidationError{Field: "budget_caps.daily", Reason: "must be positive"}
	nf := NotFoundError{Kind: "campaign", ID: "c-1"}
	it := InvalidTransitionError{CampaignID: "c-1", Current: StatusDraft, Requested: StatusDeploying}
	de := DependencyError{Op: "get campaign", Err: errors.New("connection refused")}

	require.True(t, IsValidation(ve))
	require.True(t, IsNotFound(nf))
	require.True(t, IsInvalidTransition(it))
	require.True(t, IsDependency(de))

	require.False(t, IsValidation(nf))
	require.False(t, IsNotFound(ve))
	require.False(t, IsInvalidTransition(de))
	require.False(t, IsDependency(it))

	// wrapped dependency errors stay recognisable and unwrap
	wrapped := DependencyError{Op: "outer", Err: de}
	require.True(t, IsDependency(wrapped))
	require.ErrorContains(t, it, "draft")
	require.ErrorContains(t, it, "deploying")
}

func TestDeploymentStatusTerminal(t *testing.T) {
	require.False(t, DeploymentQueued.Terminal())
	require.True(t, DeploymentConfirmed.Terminal())
	require.True(t, DeploymentFailed.Terminal())
}

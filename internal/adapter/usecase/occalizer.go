package usecase

import "adhelm/internal/core/domain"

// occalizerTable fixes the aggressiveness score and expected CPL window
// per risk mode. TOP is the most aggressive mode; the low end of the CPL
// range grows with aggressiveness (more spend pressure against cost),
// and low < high holds for every mode.
var occalizerTable = map[domain.OccalizerMode]domain.OccalizerResult{
	domain.ModeTop: {
		Mode:                  domain.ModeTop,
		BiddingAggressiveness: 0.9,
		ExpectedCPL:           domain.CPLRange{Low: 90, High: 180},
	},
	domain.ModeFair: {
		Mode:                  domain.ModeFair,
		BiddingAggressiveness: 0.6,
		ExpectedCPL:           domain.CPLRange{Low: 55, High: 120},
	},
	domain.ModeRisky: {
		Mode:                  domain.ModeRisky,
		BiddingAggressiveness: 0.35,
		ExpectedCPL:           domain.CPLRange{Low: 30, High: 80},
	},
}

// EvaluateOccalizer maps a risk mode to a fixed bidding-aggressiveness
// score and expected CPL range. It is deterministic and total over the
// valid modes; an unknown mode is a caller bug and fails immediately.
func EvaluateOccalizer(mode domain.OccalizerMode) (domain.OccalizerResult, error) {
	res, ok := occalizerTable[mode]
	if !ok {
		return domain.OccalizerResult{}, domain.ValidationError{Field: "mode", Reason: "unknown occalizer mode " + string(mode)}
	}
	return res, nil
}

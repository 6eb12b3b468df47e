package ethereum

import (
	"context"

	"github.com/rated-network/rated-go/client"
)

var (
	slashingsOverview    = endpoint[SlashingOverview]{"/slashings/overview"}
	slashingsLeaderboard = endpoint[SlashingLeaderboard]{"/slashings/leaderboard"}
	slashingsCohorts     = endpoint[SlashingCohort]{"/slashings/cohortAnalysis"}
	slashingsTimeseries  = endpoint[SlashingTimeInterval]{"/slashings/timeseries"}
	slashingsPenalties   = endpoint[SlashingPenalty]{"/slashings"}
	slashingsValidator   = endpoint[SlashingPenalty]{"/slashings/{}"}
)

// SlashingsResource queries every slashed validator of the beacon chain
type SlashingsResource struct {
	client *client.Client
}

func (r *SlashingsResource) Overview(ctx context.Context) ([]SlashingOverview, error) {
	return list(ctx, r.client, slashingsOverview, nil)
}

// Leaderboard walks the entities ranked by how often their validators were
// slashed or reported a slashing
func (r *SlashingsResource) Leaderboard(opts RankOptions) *client.Pager[SlashingLeaderboard] {
	params := client.Params{
		"from": opts.From,
		"size": set(opts.Size),
	}
	return pages(r.client, slashingsLeaderboard, params, opts.FollowNext)
}

// Cohorts returns slashing frequency by operator cohort size
func (r *SlashingsResource) Cohorts(ctx context.Context) ([]SlashingCohort, error) {
	return list(ctx, r.client, slashingsCohorts, nil)
}

// Timeseries returns slashed validators per month
func (r *SlashingsResource) Timeseries(ctx context.Context) ([]SlashingTimeInterval, error) {
	return list(ctx, r.client, slashingsTimeseries, nil)
}

// Penalties walks every slashed validator and the penalties it incurred
func (r *SlashingsResource) Penalties(opts PageOptions) *client.Pager[SlashingPenalty] {
	params := client.Params{
		"from": set(opts.From),
		"size": set(opts.Size),
	}
	return pages(r.client, slashingsPenalties, params, opts.FollowNext)
}

// ForValidator returns the slashing of one validator by index or pubkey
func (r *SlashingsResource) ForValidator(ctx context.Context, indexOrPubkey string) (SlashingPenalty, error) {
	return one(ctx, r.client, slashingsValidator, nil, indexOrPubkey)
}

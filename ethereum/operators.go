package ethereum

import (
	"cmp"
	"context"

	"github.com/rated-network/rated-go/client"
)

var (
	operatorMetadata      = endpoint[Operator]{"/operators/{}"}
	operatorEffectiveness = endpoint[OperatorEffectiveness]{"/operators/{}/effectiveness"}
	operatorClients       = endpoint[ClientPercentage]{"/operators/{}/clients"}
	operatorRelayers      = endpoint[RelayerPercentage]{"/operators/{}/relayers"}
	operatorAPR           = endpoint[OperatorAPR]{"/operators/{}/apr"}
	operatorSummary       = endpoint[OperatorSummary]{"/operators/{}/summary"}
	operatorStakeMovement = endpoint[OperatorStakeMovement]{"/operators/{}/stakeMovement"}
	operatorsPercentiles  = endpoint[Percentile]{"/operators/percentiles"}
	operatorsSummaries    = endpoint[OperatorSummary]{"/operators"}
)

// OperatorResource queries pre-materialized operator groupings. Every
// operation takes the entity's id and, optionally, the class of entity it
// names; an empty IDType lets the API infer it.
type OperatorResource struct {
	client *client.Client
}

// Metadata returns the profile of an operator
func (r *OperatorResource) Metadata(ctx context.Context, id string, idType IDType) (Operator, error) {
	return one(ctx, r.client, operatorMetadata, client.Params{"idType": set(idType)}, id)
}

// OperatorEffectivenessOptions bounds an operator's performance series.
// Granularity and FilterType default to daily.
type OperatorEffectivenessOptions struct {
	IDType      IDType
	From        Day
	Size        int
	Granularity Granularity
	FilterType  FilterType
	FollowNext  bool
}

// Effectiveness walks the historical performance of an operator
func (r *OperatorResource) Effectiveness(id string, opts OperatorEffectivenessOptions) *client.Pager[OperatorEffectiveness] {
	params := client.Params{
		"idType":      set(opts.IDType),
		"from":        set(opts.From),
		"size":        set(opts.Size),
		"granularity": cmp.Or(opts.Granularity, Daily),
		"filterType":  cmp.Or(opts.FilterType, FilterDay),
	}
	return pages(r.client, operatorEffectiveness, params, opts.FollowNext, id)
}

// Clients returns the consensus client distribution of an operator
func (r *OperatorResource) Clients(ctx context.Context, id string, idType IDType) ([]ClientPercentage, error) {
	return list(ctx, r.client, operatorClients, client.Params{"idType": set(idType)}, id)
}

// Relayers returns the relays an operator procured blocks from. The window
// defaults to thirty days.
func (r *OperatorResource) Relayers(ctx context.Context, id string, idType IDType, window TimeWindow) ([]RelayerPercentage, error) {
	params := client.Params{
		"idType": set(idType),
		"window": cmp.Or(window, ThirtyDays),
	}
	return list(ctx, r.client, operatorRelayers, params, id)
}

// OperatorAPROptions selects an operator's APR. Window is required; AprType
// defaults to Backward.
type OperatorAPROptions struct {
	IDType  IDType
	Window  TimeWindow
	AprType AprType
}

// APR returns the historical return of an operator
func (r *OperatorResource) APR(ctx context.Context, id string, opts OperatorAPROptions) (OperatorAPR, error) {
	if err := requireWindow(opts.Window); err != nil {
		return OperatorAPR{}, err
	}
	params := client.Params{
		"idType":  set(opts.IDType),
		"window":  opts.Window,
		"aprType": cmp.Or(opts.AprType, Backward),
	}
	return one(ctx, r.client, operatorAPR, params, id)
}

// Summary returns the summary statistics of an operator
func (r *OperatorResource) Summary(ctx context.Context, id string, idType IDType, window TimeWindow) (OperatorSummary, error) {
	if err := requireWindow(window); err != nil {
		return OperatorSummary{}, err
	}
	params := client.Params{
		"idType": set(idType),
		"window": window,
	}
	return one(ctx, r.client, operatorSummary, params, id)
}

// StakeMovementOptions selects activations or exits. Window is required;
// StakeAction defaults to StakeActivation.
type StakeMovementOptions struct {
	IDType      IDType
	StakeAction StakeAction
	Window      TimeWindow
}

// StakeMovement returns the activation or exit activity of an operator
func (r *OperatorResource) StakeMovement(ctx context.Context, id string, opts StakeMovementOptions) ([]OperatorStakeMovement, error) {
	if err := requireWindow(opts.Window); err != nil {
		return nil, err
	}
	params := client.Params{
		"idType":      set(opts.IDType),
		"stakeAction": cmp.Or(opts.StakeAction, StakeActivation),
		"window":      opts.Window,
	}
	return list(ctx, r.client, operatorStakeMovement, params, id)
}

// OperatorsResource queries across all operators
type OperatorsResource struct {
	client *client.Client
}

// Percentiles returns the percentile ranks of the effectiveness rating
func (r *OperatorsResource) Percentiles(ctx context.Context, idType IDType, window TimeWindow) ([]Percentile, error) {
	if err := requireWindow(window); err != nil {
		return nil, err
	}
	params := client.Params{
		"idType": set(idType),
		"window": window,
	}
	return list(ctx, r.client, operatorsPercentiles, params)
}

// SummariesOptions filters operator summaries. Window is required. PoolType
// defaults to AllPools and IDType to DepositAddress; ParentID focuses the
// summaries on the pool shares of one entity.
type SummariesOptions struct {
	Window     TimeWindow
	PoolType   PoolType
	IDType     IDType
	ParentID   string
	From       Day
	Size       int
	FollowNext bool
}

// Summaries walks the summaries of every operator
func (r *OperatorsResource) Summaries(opts SummariesOptions) (*client.Pager[OperatorSummary], error) {
	if err := requireWindow(opts.Window); err != nil {
		return nil, err
	}
	params := client.Params{
		"poolType": cmp.Or(opts.PoolType, AllPools),
		"idType":   cmp.Or(opts.IDType, DepositAddress),
		"parentId": set(opts.ParentID),
		"window":   opts.Window,
		"from":     set(opts.From),
		"size":     set(opts.Size),
	}
	return pages(r.client, operatorsSummaries, params, opts.FollowNext), nil
}

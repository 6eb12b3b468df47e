package ethereum

import (
	"cmp"
	"context"

	"github.com/rated-network/rated-go/client"
)

var (
	networkStats        = endpoint[NetworkStats]{"/network/stats"}
	networkOverview     = endpoint[NetworkOverview]{"/network/overview"}
	networkCapacity     = endpoint[NetworkChurnCapacity]{"/network/capacity"}
	networkCapacityPool = endpoint[NetworkChurnCapacityPool]{"/network/capacity/pool"}
)

// NetworkResource queries statistics of the whole network, as recent as the
// last 24 hours
type NetworkResource struct {
	client *client.Client
}

// Stats returns key performance statistics for the current day
func (r *NetworkResource) Stats(ctx context.Context) ([]NetworkStats, error) {
	return list(ctx, r.client, networkStats, nil)
}

// Overview returns key statistics per time window
func (r *NetworkResource) Overview(ctx context.Context) ([]NetworkOverview, error) {
	return list(ctx, r.client, networkOverview, nil)
}

// Capacity returns activations and exits against the churn limit
func (r *NetworkResource) Capacity(ctx context.Context) ([]NetworkChurnCapacity, error) {
	return list(ctx, r.client, networkCapacity, nil)
}

// CapacityPool breaks churn capacity down by staking pool. Zero arguments
// select activations over one day.
func (r *NetworkResource) CapacityPool(ctx context.Context, action StakeAction, window TimeWindow) ([]NetworkChurnCapacityPool, error) {
	params := client.Params{
		"stakeAction": cmp.Or(action, StakeActivation),
		"window":      cmp.Or(window, OneDay),
	}
	return list(ctx, r.client, networkCapacityPool, params)
}

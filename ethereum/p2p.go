package ethereum

import (
	"cmp"
	"context"

	"github.com/rated-network/rated-go/client"
)

var (
	p2pGeographical    = endpoint[P2PGeographicalDistribution]{"/p2p/geographical"}
	p2pHostingProvider = endpoint[P2PHostingProviderDistribution]{"/p2p/hostingProvider"}
)

// P2PResource queries aggregates of the peer-to-peer networking layer.
// Distributions default to Professionals.
type P2PResource struct {
	client *client.Client
}

// GeographicalDistribution returns the validator share of each country
func (r *P2PResource) GeographicalDistribution(ctx context.Context, dist DistributionType) ([]P2PGeographicalDistribution, error) {
	params := client.Params{"distType": cmp.Or(dist, Professionals)}
	return list(ctx, r.client, p2pGeographical, params)
}

// RankOptions pages through a ranked collection. From is the first rank; nil
// starts at the top.
type RankOptions struct {
	From       *int64
	Size       int
	FollowNext bool
}

// HostingProviderDistribution walks the validator share of each hosting
// provider
func (r *P2PResource) HostingProviderDistribution(dist DistributionType, opts RankOptions) *client.Pager[P2PHostingProviderDistribution] {
	params := client.Params{
		"from":     opts.From,
		"size":     set(opts.Size),
		"distType": cmp.Or(dist, Professionals),
	}
	return pages(r.client, p2pHostingProvider, params, opts.FollowNext)
}

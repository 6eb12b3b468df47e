package ethereum

import (
	"context"

	"github.com/rated-network/rated-go/client"
)

var (
	blocksAll    = endpoint[Block]{"/blocks"}
	blocksBySlot = endpoint[Block]{"/blocks/{}"}
)

// BlocksResource queries the slots and blocks since the Merge
type BlocksResource struct {
	client *client.Client
}

// SlotOptions pages through blocks. From is the first slot; nil starts at
// the most recent.
type SlotOptions struct {
	From       *int64
	Size       int
	FollowNext bool
}

// All walks the blocks
func (r *BlocksResource) All(opts SlotOptions) *client.Pager[Block] {
	params := client.Params{
		"from": opts.From,
		"size": set(opts.Size),
	}
	return pages(r.client, blocksAll, params, opts.FollowNext)
}

// BySlot returns the block of a consensus slot
func (r *BlocksResource) BySlot(ctx context.Context, slot int64) (Block, error) {
	return one(ctx, r.client, blocksBySlot, nil, slot)
}

package ethereum

import (
	"context"

	"github.com/rated-network/rated-go/client"
)

var (
	withdrawalsByOperator = endpoint[Withdrawal]{"/withdrawals/predicted/operators/{}"}
	withdrawalsBySlot     = endpoint[Withdrawal]{"/withdrawals/predicted/slot/{}"}
)

// WithdrawalsResource predicts when withdrawals will land
type WithdrawalsResource struct {
	client *client.Client
}

// ByOperator walks the predicted withdrawals of an operator's validators
func (r *WithdrawalsResource) ByOperator(operatorID string, opts PageOptions) *client.Pager[Withdrawal] {
	params := client.Params{
		"from": set(opts.From),
		"size": set(opts.Size),
	}
	return pages(r.client, withdrawalsByOperator, params, opts.FollowNext, operatorID)
}

// BySlot returns the validators expected to withdraw in a slot
func (r *WithdrawalsResource) BySlot(ctx context.Context, slot int64) ([]Withdrawal, error) {
	return list(ctx, r.client, withdrawalsBySlot, nil, slot)
}

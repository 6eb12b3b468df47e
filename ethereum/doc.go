// Package ethereum exposes the Ethereum resources of the Rated API.
//
//	c, err := client.New(apiKey, ethereum.Mainnet, logger)
//	if err != nil {
//		return err
//	}
//	eth, err := ethereum.New(c)
//	if err != nil {
//		return err
//	}
//	apr, err := eth.Validator().APR(ctx, "560000", ethereum.ValidatorAPROptions{Window: ethereum.ThirtyDays})
//
// Single objects and unpaginated arrays are returned directly. Paginated
// collections are returned as a *client.Pager, which fetches pages lazily
// and follows the next cursor only when FollowNext is set.
package ethereum

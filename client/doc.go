// Package client implements the request/response pipeline of the Rated API.
//
// A Client owns the HTTP connection, the fixed base URL and the headers sent
// with every request: the library identity (User-Agent), the bearer token and
// the network selector (X-Rated-Network).
//
// # Usage
//
//	c, err := client.New("", ethereum.Mainnet, zerolog.Nop())
//	if err != nil {
//		log.Fatal(err) // ErrMissingCredentials when RATED_API_KEY is unset
//	}
//
//	pager := client.PaginateAs[Effectiveness](c, "/v0/eth/validators/100/effectiveness",
//		client.Params{"size": 10}, true)
//	for eff, err := range pager.All(ctx) {
//		if err != nil {
//			return err
//		}
//		fmt.Println(*eff.ValidatorIndex)
//	}
//
// # Hooks
//
// Every request passes a chain of request hooks before it is sent. The
// built-in hooks reject a request with a *ValidationError when the identity
// header is not "rated-go/<semver>", when the bearer token is missing, or when
// a query parameter is empty. Rejected requests never reach the network.
//
// Every response passes a chain of response hooks. Custom hooks run first;
// the last built-in hook turns any status >= 400 into an *APIError carrying
// the status code, the X-Request-Id header and the body.
//
// # Pagination
//
// Paged endpoints return {"data": [...], "next": "/v0/..."}. A Pager fetches
// one page at a time, yields its items in order, and only requests the next
// page when the caller asks for more items and followNext is set. Stopping
// iteration stops fetching.
package client

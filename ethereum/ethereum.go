package ethereum

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rated-network/rated-go/client"
)

// Supported networks
const (
	Mainnet = "mainnet"
	Holesky = "holesky"
)

// Path is the API prefix of every Ethereum resource
const Path = "/v0/eth"

// ErrUnsupportedNetwork indicates the client's network has no Ethereum data
var ErrUnsupportedNetwork = errors.New("unsupported network")

var supportedNetworks = []string{Mainnet, Holesky}

// Ethereum groups the Ethereum resources of the Rated API
type Ethereum struct {
	client *client.Client
}

// New checks that c targets a supported network
func New(c *client.Client) (*Ethereum, error) {
	if !slices.Contains(supportedNetworks, c.Network()) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedNetwork, c.Network())
	}
	return &Ethereum{client: c}, nil
}

// Client returns the client requests are sent with
func (e *Ethereum) Client() *client.Client {
	return e.client
}

func (e *Ethereum) Validator() *ValidatorResource {
	return &ValidatorResource{client: e.client}
}

func (e *Ethereum) Validators() *ValidatorsResource {
	return &ValidatorsResource{client: e.client}
}

func (e *Ethereum) Operator() *OperatorResource {
	return &OperatorResource{client: e.client}
}

func (e *Ethereum) Operators() *OperatorsResource {
	return &OperatorsResource{client: e.client}
}

// Network returns the network-wide statistics
func (e *Ethereum) Network() *NetworkResource {
	return &NetworkResource{client: e.client}
}

func (e *Ethereum) P2P() *P2PResource {
	return &P2PResource{client: e.client}
}

func (e *Ethereum) Slashings() *SlashingsResource {
	return &SlashingsResource{client: e.client}
}

func (e *Ethereum) Blocks() *BlocksResource {
	return &BlocksResource{client: e.client}
}

func (e *Ethereum) Withdrawals() *WithdrawalsResource {
	return &WithdrawalsResource{client: e.client}
}

package ethereum

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rated-network/rated-go/client"
)

// ReportPath is where node operators self-report their validator sets. It is
// not scoped to a network.
const ReportPath = "/v0/selfReports/validators"

// ErrValidatorSelector indicates a validator set query named neither or both
// of pubkeys and indices
var ErrValidatorSelector = errors.New("exactly one of pubkeys or indices must be set")

var (
	validatorMetadata       = endpoint[ValidatorMetadata]{"/validators/{}"}
	validatorAPR            = endpoint[ValidatorAPR]{"/validators/{}/apr"}
	validatorEffectiveness  = endpoint[ValidatorEffectiveness]{"/validators/{}/effectiveness"}
	validatorsMetadata      = endpoint[ValidatorMetadata]{"/validators"}
	validatorsEffectiveness = endpoint[ValidatorEffectiveness]{"/validators/effectiveness"}
)

// ValidatorResource queries a single validator by index or pubkey
type ValidatorResource struct {
	client *client.Client
}

// Metadata returns the entities a validator maps to
func (r *ValidatorResource) Metadata(ctx context.Context, indexOrPubkey string) (ValidatorMetadata, error) {
	return one(ctx, r.client, validatorMetadata, nil, indexOrPubkey)
}

// ValidatorAPROptions selects the APR to compute. Zero fields use the
// backward APR over one day.
type ValidatorAPROptions struct {
	AprType AprType
	Window  TimeWindow
}

// APR returns the historical return of a validator
func (r *ValidatorResource) APR(ctx context.Context, indexOrPubkey string, opts ValidatorAPROptions) (ValidatorAPR, error) {
	params := client.Params{
		"aprType": cmp.Or(opts.AprType, Backward),
		"window":  cmp.Or(opts.Window, OneDay),
	}
	return one(ctx, r.client, validatorAPR, params, indexOrPubkey)
}

// PageOptions bounds a paginated day series
type PageOptions struct {
	From       Day
	Size       int
	FollowNext bool
}

// Effectiveness walks the daily performance of a validator
func (r *ValidatorResource) Effectiveness(indexOrPubkey string, opts PageOptions) *client.Pager[ValidatorEffectiveness] {
	params := client.Params{
		"from": set(opts.From),
		"size": set(opts.Size),
	}
	return pages(r.client, validatorEffectiveness, params, opts.FollowNext, indexOrPubkey)
}

// ValidatorsResource queries sets of validators
type ValidatorsResource struct {
	client *client.Client
}

// ValidatorsMetadataOptions filters the validator set. From starts at index
// 0, Size defaults to 100 and IDType to NodeOperator.
type ValidatorsMetadataOptions struct {
	From              int64
	Size              int
	OperatorIDs       []string
	WithdrawalAddress string
	IDType            IDType
	FollowNext        bool
}

// Metadata walks the metadata of the validators that map to the same
// operators or pools
func (r *ValidatorsResource) Metadata(opts ValidatorsMetadataOptions) *client.Pager[ValidatorMetadata] {
	params := client.Params{
		"from":               opts.From,
		"size":               cmp.Or(opts.Size, 100),
		"operators_ids":      opts.OperatorIDs,
		"withdrawal_address": set(opts.WithdrawalAddress),
		"id_type":            cmp.Or(opts.IDType, NodeOperator),
	}
	return pages(r.client, validatorsMetadata, params, opts.FollowNext)
}

// ValidatorsEffectivenessOptions aggregates effectiveness across validators.
// Exactly one of Pubkeys and Indices must be set. FilterType defaults to
// FilterDay, Size to 10 and GroupBy to GroupByValidator.
type ValidatorsEffectivenessOptions struct {
	Pubkeys     []string
	Indices     []int64
	From        Day
	To          Day
	FilterType  FilterType
	Size        int
	Granularity Granularity
	GroupBy     GroupBy
	FollowNext  bool
}

// Effectiveness walks the aggregated performance of a set of validators
func (r *ValidatorsResource) Effectiveness(opts ValidatorsEffectivenessOptions) (*client.Pager[ValidatorEffectiveness], error) {
	if (len(opts.Pubkeys) == 0) == (len(opts.Indices) == 0) {
		return nil, &client.ValidationError{
			Reason: "set either pubkeys or indices, not both",
			Err:    ErrValidatorSelector,
		}
	}

	params := client.Params{
		"pubkeys":     opts.Pubkeys,
		"indices":     opts.Indices,
		"from":        set(opts.From),
		"to":          set(opts.To),
		"filterType":  cmp.Or(opts.FilterType, FilterDay),
		"size":        cmp.Or(opts.Size, 10),
		"granularity": set(opts.Granularity),
		"groupBy":     cmp.Or(opts.GroupBy, GroupByValidator),
	}
	return pages(r.client, validatorsEffectiveness, params, opts.FollowNext), nil
}

type reportRequest struct {
	Validators []string `json:"validators"`
	PoolTag    *string  `json:"poolTag"`
}

type reportResponse struct {
	Validators []json.RawMessage `json:"validators"`
}

// Report uploads the validator pubkeys run by a node operator and returns how
// many the API accepted. An empty poolTag is sent as null.
func (r *ValidatorsResource) Report(ctx context.Context, validators []string, poolTag string) (int, error) {
	body := reportRequest{Validators: validators}
	if body.Validators == nil {
		body.Validators = []string{}
	}
	if poolTag != "" {
		body.PoolTag = &poolTag
	}

	resp, err := r.client.Post(ctx, ReportPath, body)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var out reportResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("failed to parse report response: %w", err)
	}
	if out.Validators == nil {
		return 0, errors.New("report response has no validators list")
	}

	return len(out.Validators), nil
}

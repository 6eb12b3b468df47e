package ethereum

import (
	"fmt"
	"slices"
)

// The zero value of every enum means "not set": the parameter is left out of
// the request, or the operation's documented default is used.

// StakeAction is the direction of a stake movement
type StakeAction string

const (
	StakeActivation StakeAction = "activation"
	StakeExit       StakeAction = "exit"
)

// TimeWindow is the window a metric is aggregated over
type TimeWindow string

const (
	OneDay     TimeWindow = "1d"
	SevenDays  TimeWindow = "7d"
	ThirtyDays TimeWindow = "30d"
	AllTime    TimeWindow = "all"
)

// IDType is the class of entity an identifier refers to
type IDType string

const (
	DepositAddress    IDType = "depositAddress"
	WithdrawalAddress IDType = "withdrawalAddress"
	NodeOperator      IDType = "nodeOperator"
	Pool              IDType = "pool"
	PoolShare         IDType = "poolShare"
)

// Granularity is the size of the time increments of a series
type Granularity string

const (
	Hourly             Granularity = "hour"
	Daily              Granularity = "day"
	Weekly             Granularity = "week"
	Monthly            Granularity = "month"
	Quarterly          Granularity = "quarter"
	Yearly             Granularity = "year"
	AllTimeGranularity Granularity = "all"
)

// FilterType is how the from bound of a series is interpreted
type FilterType string

const (
	FilterHour     FilterType = "hour"
	FilterDay      FilterType = "day"
	FilterDatetime FilterType = "datetime"
)

// AprType is the direction an APR is computed in
type AprType string

const (
	Backward AprType = "backward"
	Forward  AprType = "forward"
)

// PoolType narrows operator summaries to a kind of pool
type PoolType string

const (
	AllPools PoolType = "all"
	CEX      PoolType = "cex"
	LST      PoolType = "lst"
)

// DistributionType narrows p2p distributions to a set of operators
type DistributionType string

const (
	AllOperators  DistributionType = "all"
	Professionals DistributionType = "pros"
)

// GroupBy is how validator effectiveness is aggregated
type GroupBy string

const (
	GroupByTimeWindow GroupBy = "timeWindow"
	GroupByValidator  GroupBy = "validator"
)

// ParseTimeWindow returns the TimeWindow named by s
func ParseTimeWindow(s string) (TimeWindow, error) {
	return parseEnum("time window", s, OneDay, SevenDays, ThirtyDays, AllTime)
}

// ParseAprType returns the AprType named by s
func ParseAprType(s string) (AprType, error) {
	return parseEnum("apr type", s, Backward, Forward)
}

// ParseIDType returns the IDType named by s
func ParseIDType(s string) (IDType, error) {
	return parseEnum("id type", s, DepositAddress, WithdrawalAddress, NodeOperator, Pool, PoolShare)
}

// ParseStakeAction returns the StakeAction named by s
func ParseStakeAction(s string) (StakeAction, error) {
	return parseEnum("stake action", s, StakeActivation, StakeExit)
}

// ParseGranularity returns the Granularity named by s
func ParseGranularity(s string) (Granularity, error) {
	return parseEnum("granularity", s, Hourly, Daily, Weekly, Monthly, Quarterly, Yearly, AllTimeGranularity)
}

// parseEnum accepts the empty string as the unset value
func parseEnum[E ~string](what, s string, values ...E) (E, error) {
	if s == "" || slices.Contains(values, E(s)) {
		return E(s), nil
	}
	return "", fmt.Errorf("unknown %s %q (valid: %v)", what, s, values)
}

package ethereum

// Records are decoded from the API's camelCase JSON by the decode package.
// Required fields are plain values; optional fields are pointers, slices or
// maps and stay nil when the API omits them or sends null. Timestamps and
// months are kept as the ISO-8601 strings the API sends.

// ValidatorMetadata maps a validator to the entities that run it
type ValidatorMetadata struct {
	ValidatorIndex             int64    `rated:"validator_index,required"`
	ValidatorPubkey            string   `rated:"validator_pubkey,required"`
	Pool                       *string  `rated:"pool"`
	DVTNetwork                 *string  `rated:"dvt_network"`
	NodeOperators              []string `rated:"node_operators"`
	DepositAddresses           []string `rated:"deposit_addresses"`
	DVTOperators               []string `rated:"dvt_operators"`
	ActivationEpoch            *int64   `rated:"activation_epoch"`
	ActivationEligibilityEpoch *int64   `rated:"activation_eligibility_epoch"`
	ExitEpoch                  *int64   `rated:"exit_epoch"`
	WithdrawableEpoch          *int64   `rated:"withdrawable_epoch"`
	WithdrawalAddress          *string  `rated:"withdrawal_address"`
}

// ValidatorAPR is the return of a validator over a time window
type ValidatorAPR struct {
	ValidatorIndex      int64   `rated:"validator_index,required"`
	IDType              string  `rated:"id_type,required"`
	TimeWindow          string  `rated:"time_window,required"`
	AprType             string  `rated:"apr_type,required"`
	Percentage          float64 `rated:"percentage,required"`
	PercentageConsensus float64 `rated:"percentage_consensus,required"`
	PercentageExecution float64 `rated:"percentage_execution,required"`
	ActiveStake         float64 `rated:"active_stake,required"`
	ActiveValidators    int64   `rated:"active_validators,required"`
}

// ValidatorEffectiveness is one period of a validator's performance. Which
// fields are present depends on the granularity and grouping requested.
type ValidatorEffectiveness struct {
	ValidatorIndex                       *int64   `rated:"validator_index"`
	TotalAttestations                    *int64   `rated:"total_attestations"`
	TotalUniqueAttestations              *int64   `rated:"total_unique_attestations"`
	SumCorrectHead                       *int64   `rated:"sum_correct_head"`
	SumCorrectTarget                     *int64   `rated:"sum_correct_target"`
	AvgCorrectness                       *float64 `rated:"avg_correctness"`
	TotalAttestationAssignments          *int64   `rated:"total_attestation_assignments"`
	AvgInclusionDelay                    *float64 `rated:"avg_inclusion_delay"`
	SumInclusionDelay                    *float64 `rated:"sum_inclusion_delay"`
	Uptime                               *float64 `rated:"uptime"`
	AttesterEffectiveness                *float64 `rated:"attester_effectiveness"`
	ProposedCount                        *int64   `rated:"proposed_count"`
	ProposerDutiesCount                  *int64   `rated:"proposer_duties_count"`
	ProposerEffectiveness                *float64 `rated:"proposer_effectiveness"`
	SlashesCollected                     *int64   `rated:"slashes_collected"`
	SlashesReceived                      *int64   `rated:"slashes_received"`
	Earnings                             *int64   `rated:"earnings"`
	SyncSignatureCount                   *int64   `rated:"sync_signature_count"`
	ValidatorEffectiveness               *float64 `rated:"validator_effectiveness"`
	EstimatedRewards                     *int64   `rated:"estimated_rewards"`
	EstimatedPenalties                   *int64   `rated:"estimated_penalties"`
	SumPriorityFees                      *int64   `rated:"sum_priority_fees"`
	SumBaselineMEV                       *int64   `rated:"sum_baseline_mev"`
	SumMissedExecutionRewards            *int64   `rated:"sum_missed_execution_rewards"`
	SumConsensusBlockRewards             *int64   `rated:"sum_consensus_block_rewards"`
	SumMissedConsensusBlockRewards       *int64   `rated:"sum_missed_consensus_block_rewards"`
	SumAllRewards                        *int64   `rated:"sum_all_rewards"`
	SumCorrectSource                     *int64   `rated:"sum_correct_source"`
	SumMissedSyncSignatures              *int64   `rated:"sum_missed_sync_signatures"`
	SumSyncCommitteePenalties            *float64 `rated:"sum_sync_committee_penalties"`
	SumLateSourceVotes                   *int64   `rated:"sum_late_source_votes"`
	SumWrongTargetVotes                  *int64   `rated:"sum_wrong_target_votes"`
	SumLateTargetVotes                   *int64   `rated:"sum_late_target_votes"`
	SumWrongTargetPenalties              *float64 `rated:"sum_wrong_target_penalties"`
	SumLateTargetPenalties               *float64 `rated:"sum_late_target_penalties"`
	SumMissedAttestations                *int64   `rated:"sum_missed_attestations"`
	SumMissedAttestationPenalties        *float64 `rated:"sum_missed_attestation_penalties"`
	SumWrongHeadVotes                    *int64   `rated:"sum_wrong_head_votes"`
	SumWrongHeadPenalties                *float64 `rated:"sum_wrong_head_penalties"`
	SumAttestationRewards                *float64 `rated:"sum_attestation_rewards"`
	SumLateSourcePenalties               *float64 `rated:"sum_late_source_penalties"`
	ExecutionProposedEmptyCount          *int64   `rated:"execution_proposed_empty_count"`
	SumMissedAttestationRewards          *float64 `rated:"sum_missed_attestation_rewards"`
	SumMissedSyncCommitteeRewards        *float64 `rated:"sum_missed_sync_committee_rewards"`
	SumExternallySourcedExecutionRewards *int64   `rated:"sum_externally_sourced_execution_rewards"`
	Day                                  *int64   `rated:"day"`
	StartDay                             *int64   `rated:"start_day"`
	EndDay                               *int64   `rated:"end_day"`
	StartEpoch                           *int64   `rated:"start_epoch"`
	EndEpoch                             *int64   `rated:"end_epoch"`
	Hour                                 *int64   `rated:"hour"`
}

// NetworkStats summarizes network performance for one day
type NetworkStats struct {
	Day                       int64   `rated:"day,required"`
	AvgUptime                 float64 `rated:"avg_uptime,required"`
	AvgInclusionDelay         float64 `rated:"avg_inclusion_delay,required"`
	AvgCorrectness            float64 `rated:"avg_correctness,required"`
	AvgValidatorEffectiveness float64 `rated:"avg_validator_effectiveness,required"`
}

// NetworkOverview summarizes the whole network over a time window
type NetworkOverview struct {
	TimeWindow                       string           `rated:"time_window,required"`
	ValidatorCount                   int64            `rated:"validator_count,required"`
	SumMissedSlots                   int64            `rated:"sum_missed_slots,required"`
	MissedSlotsPercentage            float64          `rated:"missed_slots_percentage,required"`
	ActiveStake                      int64            `rated:"active_stake,required"`
	MedianValidatorAgeDays           int64            `rated:"median_validator_age_days,required"`
	AvgValidatorBalance              float64          `rated:"avg_validator_balance,required"`
	GiniCoefficient                  float64          `rated:"gini_coefficient,required"`
	ClientPercentages                []map[string]any `rated:"client_percentages,required"`
	LatestEpoch                      int64            `rated:"latest_epoch,required"`
	ActivationQueueMinutes           float64          `rated:"activation_queue_minutes,required"`
	ActivatingValidators             int64            `rated:"activating_validators,required"`
	ActivatingStake                  int64            `rated:"activating_stake,required"`
	ExitQueueMinutes                 float64          `rated:"exit_queue_minutes,required"`
	WithdrawalQueueMinutes           float64          `rated:"withdrawal_queue_minutes,required"`
	WithdrawalProcessingQueueMinutes float64          `rated:"withdrawal_processing_queue_minutes,required"`
	FullyWithdrawingValidators       int64            `rated:"fully_withdrawing_validators,required"`
	PartiallyWithdrawingValidators   int64            `rated:"partially_withdrawing_validators,required"`
	TotalWithdrawingValidators       int64            `rated:"total_withdrawing_validators,required"`
	FullyWithdrawingBalance          int64            `rated:"fully_withdrawing_balance,required"`
	PartiallyWithdrawingBalance      int64            `rated:"partially_withdrawing_balance,required"`
	TotalWithdrawingBalance          int64            `rated:"total_withdrawing_balance,required"`
	ExitingValidators                int64            `rated:"exiting_validators,required"`
	ValidatorCountDiff               *int64           `rated:"validator_count_diff"`
	ActiveStakeDiff                  *int64           `rated:"active_stake_diff"`
	AvgValidatorBalanceDiff          *float64         `rated:"avg_validator_balance_diff"`
	ConsensusLayerRewardsPercentage  *float64         `rated:"consensus_layer_rewards_percentage"`
	PriorityFeesPercentage           *float64         `rated:"priority_fees_percentage"`
	BaselineMEVPercentage            *float64         `rated:"baseline_mev_percentage"`
	AvgValidatorEffectiveness        *float64         `rated:"avg_validator_effectiveness"`
	AvgInclusionDelay                *float64         `rated:"avg_inclusion_delay"`
	AvgUptime                        *float64         `rated:"avg_uptime"`
	AvgConsensusAprPercentage        *float64         `rated:"avg_consensus_apr_percentage"`
	AvgExecutionAprPercentage        *float64         `rated:"avg_execution_apr_percentage"`
	MedianConsensusAprPercentage     *float64         `rated:"median_consensus_apr_percentage"`
	MedianExecutionAprPercentage     *float64         `rated:"median_execution_apr_percentage"`
	ConsensusRewardsRatio            *float64         `rated:"consensus_rewards_ratio"`
	ExecutionRewardsRatio            *float64         `rated:"execution_rewards_ratio"`
	AvgNetworkAprPercentage          *float64         `rated:"avg_network_apr_percentage"`
	MedianNetworkAprPercentage       *float64         `rated:"median_network_apr_percentage"`
	AvgConsensusAprGwei              *int64           `rated:"avg_consensus_apr_gwei"`
	AvgExecutionAprGwei              *int64           `rated:"avg_execution_apr_gwei"`
	MedianConsensusAprGwei           *int64           `rated:"median_consensus_apr_gwei"`
	MedianExecutionAprGwei           *int64           `rated:"median_execution_apr_gwei"`
	AvgNetworkAprGwei                *int64           `rated:"avg_network_apr_gwei"`
	MedianNetworkAprGwei             *int64           `rated:"median_network_apr_gwei"`
	ClientValidatorEffectiveness     []map[string]any `rated:"client_validator_effectiveness"`
	ExitingStake                     *int64           `rated:"exiting_stake"`
}

// NetworkChurnCapacity summarizes activations and exits against the churn limit
type NetworkChurnCapacity struct {
	TimeWindow               string  `rated:"time_window,required"`
	LatestEpoch              int64   `rated:"latest_epoch,required"`
	ActivatedValidators      int64   `rated:"activated_validators,required"`
	ActivationCapacityFilled float64 `rated:"activation_capacity_filled,required"`
	ExitedValidators         int64   `rated:"exited_validators,required"`
	ExitCapacityFilled       float64 `rated:"exit_capacity_filled,required"`
	ActivatedPercentage      float64 `rated:"activated_percentage,required"`
	ExitedPercentage         float64 `rated:"exited_percentage,required"`
	ChurnLimit               int64   `rated:"churn_limit,required"`
	ActivationChurnLimit     int64   `rated:"activation_churn_limit,required"`
	ExitChurnLimit           int64   `rated:"exit_churn_limit,required"`
}

// NetworkChurnCapacityPool is the churn capacity used by one staking pool
type NetworkChurnCapacityPool struct {
	TimeWindow               string  `rated:"time_window,required"`
	StakeAction              string  `rated:"stake_action,required"`
	LatestEpoch              int64   `rated:"latest_epoch,required"`
	ChurnLimit               int64   `rated:"churn_limit,required"`
	Pool                     string  `rated:"pool,required"`
	ValidatorCount           int64   `rated:"validator_count,required"`
	CapacityFilled           float64 `rated:"capacity_filled,required"`
	NetworkCapacityRemaining float64 `rated:"network_capacity_remaining,required"`
}

// Block is one consensus slot and the execution payload it carried
type Block struct {
	Epoch                       int64    `rated:"epoch,required"`
	ConsensusSlot               int64    `rated:"consensus_slot,required"`
	ValidatorIndex              int64    `rated:"validator_index,required"`
	Relays                      []string `rated:"relays,required"`
	BlockBuilderPubkeys         []string `rated:"block_builder_pubkeys,required"`
	ExecutionProposerDuty       string   `rated:"execution_proposer_duty,required"`
	ConsensusProposerDuty       string   `rated:"consensus_proposer_duty,required"`
	ConsensusBlockRoot          *string  `rated:"consensus_block_root"`
	ExecutionBlockNumber        *int64   `rated:"execution_block_number"`
	ExecutionBlockHash          *string  `rated:"execution_block_hash"`
	FeeRecipient                *string  `rated:"fee_recipient"`
	TotalType0Transactions      *int64   `rated:"total_type0_transactions"`
	TotalType2Transactions      *int64   `rated:"total_type2_transactions"`
	TotalTransactions           *int64   `rated:"total_transactions"`
	TotalGasUsed                *int64   `rated:"total_gas_used"`
	BaseFeePerGas               *int64   `rated:"base_fee_per_gas"`
	TotalBurntFees              *int64   `rated:"total_burnt_fees"`
	TotalType2TxFees            *int64   `rated:"total_type2_tx_fees"`
	TotalType0TxFees            *int64   `rated:"total_type0_tx_fees"`
	TotalPriorityFees           *int64   `rated:"total_priority_fees"`
	BaselineMEV                 *int64   `rated:"baseline_mev"`
	ExecutionRewards            *int64   `rated:"execution_rewards"`
	MissedExecutionRewards      *int64   `rated:"missed_execution_rewards"`
	ConsensusRewards            *int64   `rated:"consensus_rewards"`
	MissedConsensusRewards      *float64 `rated:"missed_consensus_rewards"`
	TotalRewards                *int64   `rated:"total_rewards"`
	TotalRewardsMissed          *float64 `rated:"total_rewards_missed"`
	TotalType1Transactions      *int64   `rated:"total_type1_transactions"`
	TotalType1TxFees            *int64   `rated:"total_type1_tx_fees"`
	BlockTimestamp              *string  `rated:"block_timestamp"`
	TotalSanctionedTransactions *int64   `rated:"total_sanctioned_transactions"`
	TotalPriorityFeesValidator  *int64   `rated:"total_priority_fees_validator"`
	TotalType3Transactions      *int64   `rated:"total_type3_transactions"`
	TotalType3TxFees            *int64   `rated:"total_type3_tx_fees"`
}

// Withdrawal is a predicted withdrawal for one validator
type Withdrawal struct {
	ValidatorIndex     int64  `rated:"validator_index,required"`
	WithdrawalType     string `rated:"withdrawal_type,required"`
	WithdrawableAmount int64  `rated:"withdrawable_amount,required"`
	ID                 string `rated:"id,required"`
	IDType             string `rated:"id_type,required"`
	WithdrawalSlot     int64  `rated:"withdrawal_slot,required"`
	WithdrawalEpoch    int64  `rated:"withdrawal_epoch,required"`
}

// P2PGeographicalDistribution is the validator share of one country
type P2PGeographicalDistribution struct {
	Country        string  `rated:"country,required"`
	CountryCode    string  `rated:"country_code,required"`
	ValidatorShare float64 `rated:"validator_share,required"`
	DistType       string  `rated:"dist_type,required"`
}

// P2PHostingProviderDistribution is the validator share of one hosting provider
type P2PHostingProviderDistribution struct {
	HostingProvider string  `rated:"hosting_provider,required"`
	ValidatorShare  float64 `rated:"validator_share,required"`
	DistType        string  `rated:"dist_type,required"`
}

type SlashingOverview struct {
	TimeWindow                       string  `rated:"time_window,required"`
	ValidatorsSlashed                int64   `rated:"validators_slashed,required"`
	DiscreteSlashingEvents           int64   `rated:"discrete_slashing_events,required"`
	LargestSlashingIncident          int64   `rated:"largest_slashing_incident,required"`
	CurrentSlashingPenaltyGwei       int64   `rated:"current_slashing_penalty_gwei,required"`
	SlashingSlotsRatio               float64 `rated:"slashing_slots_ratio,required"`
	SolosRatio                       float64 `rated:"solos_ratio,required"`
	ProsRatio                        float64 `rated:"pros_ratio,required"`
	SlashingPenaltiesAllRewardsRatio float64 `rated:"slashing_penalties_all_rewards_ratio,required"`
	SlashingPenaltiesStakeRatio      float64 `rated:"slashing_penalties_stake_ratio,required"`
}

type SlashingLeaderboard struct {
	ID                 string `rated:"id,required"`
	IDType             string `rated:"id_type,required"`
	Slashes            int64  `rated:"slashes,required"`
	MedianSlashedMonth string `rated:"median_slashed_month,required"`
	SlasherPedigree    string `rated:"slasher_pedigree,required"`
	SlashingRole       string `rated:"slashing_role,required"`
	ValidatorCount     int64  `rated:"validator_count,required"`
}

type SlashingCohort struct {
	Cohort        string `rated:"cohort,required"`
	LastSixMonths int64  `rated:"last_six_months,required"`
	PastYear      int64  `rated:"past_year,required"`
	PastTwoYears  int64  `rated:"past_two_years,required"`
	AllTime       int64  `rated:"all_time,required"`
}

// SlashingTimeInterval counts slashed validators in one month (YYYY-MM-DD)
type SlashingTimeInterval struct {
	Month             string `rated:"month,required"`
	ValidatorsSlashed int64  `rated:"validators_slashed,required"`
}

type SlashingPenalty struct {
	ValidatorIndex          int64  `rated:"validator_index,required"`
	ValidatorPubkey         string `rated:"validator_pubkey,required"`
	SlashingEpoch           int64  `rated:"slashing_epoch,required"`
	WithdrawableEpoch       int64  `rated:"withdrawable_epoch,required"`
	BalanceBeforeSlashing   int64  `rated:"balance_before_slashing,required"`
	BalanceBeforeWithdrawal int64  `rated:"balance_before_withdrawal,required"`
	SlashingPenalties       int64  `rated:"slashing_penalties,required"`
}

// Operator is the profile of a pre-materialized entity
type Operator struct {
	ID                string           `rated:"id,required"`
	IDType            string           `rated:"id_type,required"`
	DisplayName       string           `rated:"display_name,required"`
	OperatorTags      []map[string]any `rated:"operator_tags,required"`
	NodeOperatorCount *int64           `rated:"node_operator_count"`
}

type OperatorEffectiveness struct {
	ID                                   string   `rated:"id,required"`
	IDType                               string   `rated:"id_type,required"`
	ValidatorCount                       *int64   `rated:"validator_count"`
	AvgInclusionDelay                    *float64 `rated:"avg_inclusion_delay"`
	AvgUptime                            *float64 `rated:"avg_uptime"`
	AvgCorrectness                       *float64 `rated:"avg_correctness"`
	AvgProposerEffectiveness             *float64 `rated:"avg_proposer_effectiveness"`
	AvgValidatorEffectiveness            *float64 `rated:"avg_validator_effectiveness"`
	TotalUniqueAttestations              *int64   `rated:"total_unique_attestations"`
	SumCorrectHead                       *int64   `rated:"sum_correct_head"`
	SumCorrectTarget                     *int64   `rated:"sum_correct_target"`
	SumInclusionDelay                    *float64 `rated:"sum_inclusion_delay"`
	SumProposedCount                     *int64   `rated:"sum_proposed_count"`
	SumProposerDutiesCount               *int64   `rated:"sum_proposer_duties_count"`
	SlashesCollected                     *int64   `rated:"slashes_collected"`
	SlashesReceived                      *int64   `rated:"slashes_received"`
	SumEarnings                          *int64   `rated:"sum_earnings"`
	SumEstimatedRewards                  *int64   `rated:"sum_estimated_rewards"`
	SumEstimatedPenalties                *int64   `rated:"sum_estimated_penalties"`
	NetworkPenetration                   *float64 `rated:"network_penetration"`
	SumPriorityFees                      *int64   `rated:"sum_priority_fees"`
	SumBaselineMEV                       *int64   `rated:"sum_baseline_mev"`
	SumMissedExecutionRewards            *int64   `rated:"sum_missed_execution_rewards"`
	SumConsensusBlockRewards             *int64   `rated:"sum_consensus_block_rewards"`
	SumMissedConsensusBlockRewards       *int64   `rated:"sum_missed_consensus_block_rewards"`
	SumAllRewards                        *int64   `rated:"sum_all_rewards"`
	SumCorrectSource                     *int64   `rated:"sum_correct_source"`
	AvgAttesterEffectiveness             *float64 `rated:"avg_attester_effectiveness"`
	SumMissedSyncSignatures              *int64   `rated:"sum_missed_sync_signatures"`
	SumSyncCommitteePenalties            *float64 `rated:"sum_sync_committee_penalties"`
	SumLateSourceVotes                   *int64   `rated:"sum_late_source_votes"`
	SumWrongTargetVotes                  *int64   `rated:"sum_wrong_target_votes"`
	SumLateTargetVotes                   *int64   `rated:"sum_late_target_votes"`
	SumWrongTargetPenalties              *float64 `rated:"sum_wrong_target_penalties"`
	SumLateTargetPenalties               *float64 `rated:"sum_late_target_penalties"`
	SumMissedAttestations                *int64   `rated:"sum_missed_attestations"`
	SumMissedAttestationPenalties        *float64 `rated:"sum_missed_attestation_penalties"`
	SumWrongHeadVotes                    *int64   `rated:"sum_wrong_head_votes"`
	SumWrongHeadPenalties                *float64 `rated:"sum_wrong_head_penalties"`
	SumAttestationRewards                *float64 `rated:"sum_attestation_rewards"`
	SumLateSourcePenalties               *float64 `rated:"sum_late_source_penalties"`
	SumExecutionProposedEmptyCount       *int64   `rated:"sum_execution_proposed_empty_count"`
	SumMissedAttestationRewards          *float64 `rated:"sum_missed_attestation_rewards"`
	SumMissedSyncCommitteeRewards        *float64 `rated:"sum_missed_sync_committee_rewards"`
	SumExternallySourcedExecutionRewards *int64   `rated:"sum_externally_sourced_execution_rewards"`
	Day                                  *int64   `rated:"day"`
	StartDay                             *int64   `rated:"start_day"`
	EndDay                               *int64   `rated:"end_day"`
	EndEpoch                             *int64   `rated:"end_epoch"`
	StartEpoch                           *int64   `rated:"start_epoch"`
	Hour                                 *int64   `rated:"hour"`
}

type ClientPercentage struct {
	Client     string  `rated:"client,required"`
	Percentage float64 `rated:"percentage,required"`
}

type RelayerPercentage struct {
	Relayer    string  `rated:"relayer,required"`
	Percentage float64 `rated:"percentage,required"`
}

type OperatorAPR struct {
	ID                  string  `rated:"id,required"`
	IDType              string  `rated:"id_type,required"`
	TimeWindow          string  `rated:"time_window,required"`
	AprType             string  `rated:"apr_type,required"`
	Percentage          float64 `rated:"percentage,required"`
	PercentageConsensus float64 `rated:"percentage_consensus,required"`
	PercentageExecution float64 `rated:"percentage_execution,required"`
	ActiveStake         float64 `rated:"active_stake,required"`
	ActiveValidators    int64   `rated:"active_validators,required"`
}

// OperatorSummary aggregates an operator's performance over a time window
type OperatorSummary struct {
	ID                        string           `rated:"id,required"`
	IDType                    string           `rated:"id_type,required"`
	TimeWindow                string           `rated:"time_window,required"`
	ValidatorCount            int64            `rated:"validator_count,required"`
	AvgCorrectness            float64          `rated:"avg_correctness,required"`
	AvgUptime                 float64          `rated:"avg_uptime,required"`
	AvgValidatorEffectiveness float64          `rated:"avg_validator_effectiveness,required"`
	ClientPercentages         []map[string]any `rated:"client_percentages,required"`
	RelayerPercentages        []map[string]any `rated:"relayer_percentages,required"`
	OperatorTags              []map[string]any `rated:"operator_tags,required"`
	NetworkPenetration        *float64         `rated:"network_penetration"`
	AvgInclusionDelay         *float64         `rated:"avg_inclusion_delay"`
	NodeOperatorCount         *int64           `rated:"node_operator_count"`
	DisplayName               *string          `rated:"display_name"`
	AprPercentage             *string          `rated:"apr_percentage"`
}

type OperatorStakeMovement struct {
	TimeWindow         string  `rated:"time_window,required"`
	ID                 string  `rated:"id,required"`
	IDType             string  `rated:"id_type,required"`
	StakeAction        string  `rated:"stake_action,required"`
	ValidatorCount     int64   `rated:"validator_count,required"`
	AvgEpochsToAction  int64   `rated:"avg_epochs_to_action,required"`
	AvgMinutesToAction float64 `rated:"avg_minutes_to_action,required"`
	AmountGwei         *int64  `rated:"amount_gwei"`
}

// Percentile is one rank of the effectiveness rating distribution
type Percentile struct {
	TimeWindow string  `rated:"time_window,required"`
	Rank       int64   `rated:"rank,required"`
	Value      float64 `rated:"value,required"`
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rated-network/rated-go/ethereum"
)

var (
	operatorWindow string
	operatorIDType string
)

var operatorCmd = &cobra.Command{
	Use:   "operator",
	Short: "Query node operators, pools and deposit addresses",
}

var operatorSummaryCmd = &cobra.Command{
	Use:   "summary <id>",
	Short: "Show the performance summary of an operator",
	Long: `Fetch the summary of an operator over a time window. The id is
interpreted according to --id-type.

Example:
  rated operator summary Lido --id-type pool --window 30d`,
	Args: cobra.ExactArgs(1),
	RunE: runOperatorSummary,
}

func init() {
	operatorSummaryCmd.Flags().StringVar(&operatorWindow, "window", "1d", "time window: 1d, 7d, 30d or all")
	operatorSummaryCmd.Flags().StringVar(&operatorIDType, "id-type", "",
		"id type: depositAddress, withdrawalAddress, nodeOperator, pool or poolShare")

	operatorCmd.AddCommand(operatorSummaryCmd)
}

func runOperatorSummary(cmd *cobra.Command, args []string) error {
	w, err := ethereum.ParseTimeWindow(operatorWindow)
	if err != nil {
		return err
	}
	idType, err := ethereum.ParseIDType(operatorIDType)
	if err != nil {
		return err
	}

	summary, err := eth.Operator().Summary(cmd.Context(), args[0], idType, w)
	if err != nil {
		return fmt.Errorf("operator %s: %w", args[0], err)
	}

	if err := out.Print(summary); err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	summarize(stderr, "Validators", summary.ValidatorCount)
	summarize(stderr, "Effectiveness", fmt.Sprintf("%.2f%%", summary.AvgValidatorEffectiveness))
	summarize(stderr, "Uptime", fmt.Sprintf("%.2f%%", summary.AvgUptime*100))

	return nil
}

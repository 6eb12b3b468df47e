package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rated-network/rated-go/ethereum"
)

var networkJSON bool

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Query network-wide statistics",
}

var networkOverviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show the network overview for every time window",
	Args:  cobra.NoArgs,
	RunE:  runNetworkOverview,
}

func init() {
	networkOverviewCmd.Flags().BoolVar(&networkJSON, "json", false, "print records instead of a summary")

	networkCmd.AddCommand(networkOverviewCmd)
}

func runNetworkOverview(cmd *cobra.Command, args []string) error {
	overviews, err := eth.Network().Overview(cmd.Context())
	if err != nil {
		return err
	}

	if networkJSON {
		return printAll(out, overviews)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "🌐 Network: %s\n", color.CyanString(cfg.API.Network))
	for _, o := range overviews {
		printOverview(w, o)
	}
	return nil
}

func printOverview(w io.Writer, o ethereum.NetworkOverview) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s\n", color.GreenString("Window %s", o.TimeWindow))
	summarize(w, "  Validators", o.ValidatorCount)
	summarize(w, "  Active stake", fmt.Sprintf("%d ETH", o.ActiveStake))
	summarize(w, "  Missed slots", fmt.Sprintf("%d (%.2f%%)", o.SumMissedSlots, o.MissedSlotsPercentage))
	summarize(w, "  Latest epoch", o.LatestEpoch)
	summarize(w, "  Activation queue", queue(o.ActivationQueueMinutes))
	summarize(w, "  Exit queue", queue(o.ExitQueueMinutes))
	summarize(w, "  Withdrawal queue", queue(o.WithdrawalQueueMinutes))
	if o.ValidatorCountDiff != nil {
		summarize(w, "  Validator change", signed(*o.ValidatorCountDiff))
	}
}

func queue(minutes float64) string {
	if minutes >= 60*24 {
		return fmt.Sprintf("%.1f days", minutes/(60*24))
	}
	if minutes >= 60 {
		return fmt.Sprintf("%.1f hours", minutes/60)
	}
	return fmt.Sprintf("%.0f minutes", minutes)
}

func signed(n int64) string {
	if n < 0 {
		return color.RedString("%d", n)
	}
	return color.GreenString("+%d", n)
}

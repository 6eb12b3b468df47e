package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rated-network/rated-go/ethereum"
)

var slashingsFrom string

var slashingsCmd = &cobra.Command{
	Use:   "slashings",
	Short: "Query slashing incidents",
}

var slashingsPenaltiesCmd = &cobra.Command{
	Use:   "penalties",
	Short: "List the penalties of slashed validators",
	Long: `List slashed validators with their penalties, one page at a time or
every page with --all. A total in ETH is printed to stderr.`,
	Args: cobra.NoArgs,
	RunE: runSlashingsPenalties,
}

func init() {
	slashingsPenaltiesCmd.Flags().StringVar(&slashingsFrom, "from", "", "first day, as a day number or YYYY-MM-DD")

	slashingsCmd.AddCommand(slashingsPenaltiesCmd)
}

func runSlashingsPenalties(cmd *cobra.Command, args []string) error {
	from, err := ethereum.ParseDay(slashingsFrom)
	if err != nil {
		return err
	}

	pager := eth.Slashings().Penalties(ethereum.PageOptions{
		From:       from,
		Size:       pageSize(),
		FollowNext: followNext,
	})

	var count, total int64
	err = printPages(cmd.Context(), out, pager, func(p ethereum.SlashingPenalty) {
		count++
		total += p.SlashingPenalties
	})
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	summarize(stderr, "Slashed validators", count)
	summarize(stderr, "Total penalties", gweiToETH(total))

	return nil
}

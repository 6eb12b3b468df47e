package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rated-network/rated-go/ethereum"
)

// MaxConcurrency bounds the single-record lookups in flight at once
const MaxConcurrency = 8

var (
	window  string
	aprType string
	fromDay string
)

var validatorCmd = &cobra.Command{
	Use:   "validator",
	Short: "Query single validators by index or pubkey",
}

var validatorMetadataCmd = &cobra.Command{
	Use:   "metadata <index-or-pubkey>...",
	Short: "Show validator metadata",
	Long: `Fetch the metadata of one or more validators. Lookups run concurrently and
records are printed in argument order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidatorMetadata,
}

var validatorAPRCmd = &cobra.Command{
	Use:   "apr <index-or-pubkey>",
	Short: "Show the historical APR of a validator",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidatorAPR,
}

var validatorEffectivenessCmd = &cobra.Command{
	Use:   "effectiveness <index-or-pubkey>",
	Short: "Show the daily effectiveness of a validator",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidatorEffectiveness,
}

func init() {
	validatorAPRCmd.Flags().StringVar(&window, "window", "1d", "time window: 1d, 7d, 30d or all")
	validatorAPRCmd.Flags().StringVar(&aprType, "apr-type", "backward", "APR type: backward or forward")

	validatorEffectivenessCmd.Flags().StringVar(&fromDay, "from", "", "first day, as a day number or YYYY-MM-DD")

	validatorCmd.AddCommand(validatorMetadataCmd)
	validatorCmd.AddCommand(validatorAPRCmd)
	validatorCmd.AddCommand(validatorEffectivenessCmd)
}

func runValidatorMetadata(cmd *cobra.Command, args []string) error {
	records := make([]ethereum.ValidatorMetadata, len(args))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(MaxConcurrency)

	for i, id := range args {
		g.Go(func() error {
			record, err := eth.Validator().Metadata(ctx, id)
			if err != nil {
				return fmt.Errorf("validator %s: %w", id, err)
			}
			records[i] = record
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return printAll(out, records)
}

func runValidatorAPR(cmd *cobra.Command, args []string) error {
	w, err := ethereum.ParseTimeWindow(window)
	if err != nil {
		return err
	}
	t, err := ethereum.ParseAprType(aprType)
	if err != nil {
		return err
	}

	record, err := eth.Validator().APR(cmd.Context(), args[0], ethereum.ValidatorAPROptions{
		AprType: t,
		Window:  w,
	})
	if err != nil {
		return err
	}

	return out.Print(record)
}

func runValidatorEffectiveness(cmd *cobra.Command, args []string) error {
	from, err := ethereum.ParseDay(fromDay)
	if err != nil {
		return err
	}

	pager := eth.Validator().Effectiveness(args[0], ethereum.PageOptions{
		From:       from,
		Size:       pageSize(),
		FollowNext: followNext,
	})

	return printPages(cmd.Context(), out, pager, nil)
}

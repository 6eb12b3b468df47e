package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// pubkeyLength is the size of a BLS validator pubkey in bytes
const pubkeyLength = 48

var poolTag string

var reportCmd = &cobra.Command{
	Use:   "report <pubkey>...",
	Short: "Report the validators run by your organisation",
	Long: `Upload validator pubkeys to the Rated self-report endpoint, optionally
tagged with the pool they belong to. Every pubkey must be a 0x-prefixed
48 byte hex string.

Example:
  rated report 0x8a...c1 0x93...0f --pool-tag Lido`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&poolTag, "pool-tag", "", "pool the validators belong to")
}

func runReport(cmd *cobra.Command, args []string) error {
	if err := checkPubkeys(args); err != nil {
		return err
	}

	accepted, err := eth.Validators().Report(cmd.Context(), args, poolTag)
	if err != nil {
		return err
	}

	logger.Info().
		Int("sent", len(args)).
		Int("accepted", accepted).
		Str("pool_tag", poolTag).
		Msg("Reported validators")

	fmt.Fprintf(cmd.OutOrStdout(), "✅ Reported %s of %d validators\n",
		color.GreenString("%d", accepted), len(args))
	return nil
}

// checkPubkeys rejects anything that is not a hex encoded BLS pubkey
func checkPubkeys(pubkeys []string) error {
	for _, pk := range pubkeys {
		b, err := hexutil.Decode(pk)
		if err != nil {
			return fmt.Errorf("invalid pubkey %q: %w", pk, err)
		}
		if len(b) != pubkeyLength {
			return fmt.Errorf("invalid pubkey %q: got %d bytes, want %d", pk, len(b), pubkeyLength)
		}
	}
	return nil
}

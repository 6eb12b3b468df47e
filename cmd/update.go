package cmd

import (
	"fmt"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// releaseRepository hosts the rated release binaries
const releaseRepository = "rated-network/rated-go"

var checkOnly bool

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update rated to the latest release",
	Long: `Check GitHub releases for a newer version of rated and replace the
running binary with it.

Examples:
  rated update           # Check and install the latest release
  rated update --check   # Only check for updates, don't install`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{offline: "true"},
	RunE:        runUpdate,
}

func init() {
	updateCmd.Flags().BoolVar(&checkOnly, "check", false, "only check for updates, don't install")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	w := cmd.OutOrStdout()

	current, err := semver.ParseTolerant(version)
	if err != nil {
		return fmt.Errorf("cannot update a %s build: %w", version, err)
	}

	fmt.Fprintln(w, "🔄 Checking for rated updates...")
	fmt.Fprintf(w, "📦 Current version: %s\n", color.CyanString("v%s", current))

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(releaseRepository))
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s", releaseRepository)
	}

	next, err := semver.ParseTolerant(latest.Version())
	if err != nil {
		return fmt.Errorf("invalid release version %q: %w", latest.Version(), err)
	}

	if next.LTE(current) {
		fmt.Fprintf(w, "✅ You're running the latest version (%s)\n", color.GreenString("v%s", current))
		return nil
	}

	fmt.Fprintf(w, "🆕 New version available: %s\n", color.YellowString("v%s", next))
	if checkOnly {
		fmt.Fprintln(w, "Run 'rated update' to install it.")
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}

	logger.Info().
		Str("from", current.String()).
		Str("to", next.String()).
		Str("asset", latest.AssetName).
		Msg("Installing update")

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to install update: %w", err)
	}

	fmt.Fprintf(w, "🎉 Updated to %s\n", color.GreenString("v%s", next))
	return nil
}

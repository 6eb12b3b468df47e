package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/rated-network/rated-go/client"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion records the build information injected by the linker
func SetVersion(v, built string) {
	version = v
	buildTime = built
	rootCmd.Version = v
}

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print version information",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{offline: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "rated %s (built %s)\n", version, buildTime)
		fmt.Fprintf(w, "library %s\n", client.UserAgent)
		fmt.Fprintf(w, "%s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rated-network/rated-go/client"
	"github.com/rated-network/rated-go/config"
	"github.com/rated-network/rated-go/ethereum"
	"github.com/rated-network/rated-go/filter"
)

// offline marks commands that never talk to the Rated API
const offline = "offline"

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	eth     *ethereum.Ethereum
	out     *printer

	// Global flags
	apiKey     string
	network    string
	baseURL    string
	filterRef  string
	followNext bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "rated",
	Short: "Query the Rated Ethereum analytics API",
	Long: `rated queries the Rated API for validator, operator, network and
slashing analytics and prints one JSON object per record.

Records can be narrowed with --filter, either an expression over the
snake_case record fields or @name for a filter from the config file:

  rated validator metadata 1 2 3 --filter 'has("pool")'
  rated slashings penalties --all --filter @big`,
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, color.RedString("Error:"), err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml or ~/.rated/config.yaml)")
	flags.StringVar(&apiKey, "api-key", "", "Rated API key (default $"+config.EnvAPIKey+")")
	flags.StringVar(&network, "network", "", "network to query: mainnet or holesky")
	flags.StringVar(&baseURL, "base-url", "", "override the API base URL")
	flags.StringVarP(&filterRef, "filter", "f", "", "filter expression, or @name of a configured filter")
	flags.BoolVar(&followNext, "all", false, "follow pagination links through every page")

	rootCmd.AddCommand(validatorCmd)
	rootCmd.AddCommand(operatorCmd)
	rootCmd.AddCommand(networkCmd)
	rootCmd.AddCommand(slashingsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp loads the configuration and builds the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Command line overrides
	flags := cmd.Flags()
	if flags.Changed("api-key") {
		cfg.API.Key = apiKey
	}
	if flags.Changed("network") {
		cfg.API.Network = network
	}
	if flags.Changed("base-url") {
		cfg.API.BaseURL = baseURL
	}

	logger = setupLogger(cfg.Logging)
	if !cfg.Logging.Color {
		color.NoColor = true
	}

	if cmd.Annotations[offline] != "" {
		return nil
	}

	f, err := resolveFilter(cfg.Output.Filters, filterRef)
	if err != nil {
		return err
	}
	out = newPrinter(cmd.OutOrStdout(), f)

	opts := []client.Option{client.WithTimeout(cfg.API.Timeout)}
	if cfg.API.BaseURL != "" {
		opts = append(opts, client.WithBaseURL(cfg.API.BaseURL))
	}

	c, err := client.New(cfg.API.Key, cfg.API.Network, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create Rated client: %w", err)
	}

	eth, err = ethereum.New(c)
	if err != nil {
		return fmt.Errorf("failed to create Ethereum client: %w", err)
	}

	logger.Debug().
		Str("network", c.Network()).
		Str("base_url", c.BaseURL()).
		Msg("Rated client ready")

	return nil
}

// resolveFilter compiles the configured filters and picks ref among them. An
// empty ref selects nothing.
func resolveFilter(named map[string]string, ref string) (*filter.Filter, error) {
	registry, err := filter.NewRegistry(named)
	if err != nil {
		return nil, fmt.Errorf("invalid output.filters: %w", err)
	}

	if strings.TrimSpace(ref) == "" {
		return nil, nil
	}

	f, err := registry.Resolve(ref)
	if err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}
	return f, nil
}

// pageSize is the page size requested by paged commands
func pageSize() int {
	return cfg.Output.PageSize
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(os.Stderr),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/nlpay/internal/calculation"
	"github.com/rgehrsitz/nlpay/internal/config"
)

const (
	envRatesFile = "NLPAY_RATES_FILE"
	envAddr      = "NLPAY_ADDR"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "nlpay",
		Short:         "Dutch net paycheck calculator",
		Long:          "Calculate Dutch net income from gross salary: payroll tax, social security, tax credits and the 30% ruling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("rates", "", "Path to a YAML or JSON rates file (default: $"+envRatesFile+" or the embedded tables)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output for detailed calculations")

	rootCmd.AddCommand(calculateCmd())
	rootCmd.AddCommand(compareCmd())
	rootCmd.AddCommand(grossCmd())
	rootCmd.AddCommand(yearsCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(tuiCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func newLogger(debugMode bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if debugMode {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// loadEngine builds a calculation engine from the --rates flag, the environment or the embedded tables
func loadEngine(cmd *cobra.Command) (*calculation.CalculationEngine, *logrus.Logger, error) {
	ratesFile, _ := cmd.Flags().GetString("rates")
	if ratesFile == "" {
		ratesFile = os.Getenv(envRatesFile)
	}
	debugMode, _ := cmd.Flags().GetBool("debug")
	logger := newLogger(debugMode)

	var (
		provider *config.Provider
		err      error
	)
	if ratesFile != "" {
		logger.Debugf("loading rates from %s", ratesFile)
		provider, err = config.LoadProvider(ratesFile)
	} else {
		provider, err = config.LoadDefault()
	}
	if err != nil {
		return nil, nil, err
	}

	engine := calculation.NewCalculationEngine(provider)
	if debugMode {
		engine.SetLogger(logger)
	}
	engine.Debug = debugMode
	return engine, logger, nil
}

func yearsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "years",
		Short: "List the supported tax years",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, year := range engine.SupportedYears() {
				marker := ""
				if year == engine.CurrentYear() {
					marker = " (current)"
				}
				fmt.Fprintf(out, "%d%s\n", year, marker)
			}
			return nil
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [rates-file]",
		Short: "Validate a rates file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := config.LoadProvider(args[0])
			if err != nil {
				return err
			}

			years := make([]string, 0)
			for _, y := range provider.SupportedYears() {
				years = append(years, fmt.Sprint(y))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rates file %s is valid (years: %s)\n", args[0], strings.Join(years, ", "))
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "nlpay %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

func main() {
	// A missing .env is fine; the environment and flags still apply.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/nlpay/internal/breakeven"
)

func grossCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gross [target-net]",
		Short: "Find the gross income needed for a target net paycheck",
		Long: `Find the gross income needed for a target net paycheck.

The target is expressed in --period and the answer uses the same period.

Examples:
  nlpay gross 3500 --period month
  nlpay gross 50000 --ruling normal
  nlpay gross 3500 --period month --years 2025,2026
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := loadEngine(cmd)
			if err != nil {
				return err
			}

			base, err := scenarioFromFlags(cmd, "0", engine)
			if err != nil {
				return err
			}
			target, err := parseAmount("target net", args[0])
			if err != nil {
				return err
			}

			solver := breakeven.NewDefaultSolver(engine)
			req := breakeven.SolveRequest{Base: base, TargetNet: target}
			outputFormat, _ := cmd.Flags().GetString("format")
			outputFormat = strings.ToLower(outputFormat)
			if outputFormat != "table" && outputFormat != "json" {
				return fmt.Errorf("unsupported format %q (available: table, json)", outputFormat)
			}

			yearsStr, _ := cmd.Flags().GetString("years")
			var result string
			if yearsStr != "" {
				years, err := parseYears(yearsStr)
				if err != nil {
					return err
				}
				multi, err := solver.SolveForYears(cmd.Context(), req, years)
				if err != nil {
					return err
				}
				if outputFormat == "json" {
					result, err = (&breakeven.JSONFormatter{Pretty: true}).FormatMulti(multi)
					result += "\n"
				} else {
					result = (&breakeven.TableFormatter{}).FormatMulti(multi)
				}
				if err != nil {
					return err
				}
			} else {
				single, err := solver.Solve(cmd.Context(), req)
				if err != nil {
					return err
				}
				if outputFormat == "json" {
					result, err = (&breakeven.JSONFormatter{Pretty: true}).Format(single)
					result += "\n"
				} else {
					result = (&breakeven.TableFormatter{}).Format(single)
				}
				if err != nil {
					return err
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), result)
			return nil
		},
	}

	addInputFlags(cmd)
	cmd.Flags().String("years", "", "Comma-separated tax years to solve side by side")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
	return cmd
}

func parseYears(s string) ([]int, error) {
	var years []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		year, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid year %q: %w", part, err)
		}
		years = append(years, year)
	}
	if len(years) == 0 {
		return nil, fmt.Errorf("no years given")
	}
	return years, nil
}

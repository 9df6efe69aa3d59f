package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/nlpay/internal/calculation"
	"github.com/rgehrsitz/nlpay/internal/domain"
	"github.com/rgehrsitz/nlpay/internal/output"
)

// addInputFlags registers the salary flags shared by calculate and compare
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("period", "p", "year", "Period the income is expressed in (year, month, week, day, hour)")
	cmd.Flags().IntP("year", "y", 0, "Tax year (default: current year of the rates)")
	cmd.Flags().String("ruling", "", "Apply the 30% ruling (normal, young, research)")
	cmd.Flags().Bool("holiday-allowance", false, "Income already includes the 8% holiday allowance")
	cmd.Flags().Bool("no-social-security", false, "Exclude social security contributions")
	cmd.Flags().Bool("retired", false, "Employee has reached the state pension (AOW) age")
	cmd.Flags().String("hours", "", "Working hours per week (default: defaultWorkingHours of the rates)")
}

// scenarioFromFlags builds the calculation scenario named "base" from an income argument and the input flags
func scenarioFromFlags(cmd *cobra.Command, incomeArg string, engine *calculation.CalculationEngine) (*domain.Scenario, error) {
	income, err := parseAmount("income", incomeArg)
	if err != nil {
		return nil, err
	}

	periodName, _ := cmd.Flags().GetString("period")
	period, err := domain.ParsePeriod(periodName)
	if err != nil {
		return nil, err
	}

	year, _ := cmd.Flags().GetInt("year")
	if year == 0 {
		year = engine.CurrentYear()
	}

	ruling := domain.RulingDisabled()
	if rulingName, _ := cmd.Flags().GetString("ruling"); rulingName != "" {
		t, err := domain.ParseRulingType(rulingName)
		if err != nil {
			return nil, err
		}
		ruling = domain.RulingEnabled(t)
	}

	holiday, _ := cmd.Flags().GetBool("holiday-allowance")
	noSocial, _ := cmd.Flags().GetBool("no-social-security")
	retired, _ := cmd.Flags().GetBool("retired")
	opts := []domain.InputOption{
		domain.WithHolidayAllowance(holiday),
		domain.WithSocialSecurity(!noSocial),
		domain.WithRetirementAge(retired),
	}

	if hoursText, _ := cmd.Flags().GetString("hours"); strings.TrimSpace(hoursText) != "" {
		hours, err := decimal.NewFromString(strings.TrimSpace(hoursText))
		if err != nil {
			return nil, &domain.InvalidInputError{Field: "working hours", Value: hoursText, Reason: "must be a number"}
		}
		opts = append(opts, domain.WithHoursPerWeek(hours))
	}

	input, err := engine.NewSalaryInput(income, opts...)
	if err != nil {
		return nil, err
	}

	return &domain.Scenario{
		Name:   "base",
		Input:  input,
		Period: period,
		Year:   year,
		Ruling: ruling,
	}, nil
}

// parseAmount reads a money argument, tolerating thousands separators
func parseAmount(field, arg string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.ReplaceAll(arg, ",", ""))
	if err != nil {
		return decimal.Zero, &domain.InvalidInputError{Field: field, Value: arg, Reason: "must be a number"}
	}
	return amount, nil
}

func calculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate [income]",
		Short: "Calculate the net paycheck for a gross income",
		Long: `Calculate the net paycheck for a gross income.

Examples:
  nlpay calculate 60000
  nlpay calculate 5000 --period month --ruling normal
  nlpay calculate 60000 --year 2026 --format json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := loadEngine(cmd)
			if err != nil {
				return err
			}

			scenario, err := scenarioFromFlags(cmd, args[0], engine)
			if err != nil {
				return err
			}

			result, err := engine.Calculate(scenario.Input, scenario.Period, scenario.Year, scenario.Ruling)
			if err != nil {
				return err
			}

			outputFormat, _ := cmd.Flags().GetString("format")
			f := output.GetFormatterByName(outputFormat)
			if f == nil {
				return fmt.Errorf("unsupported format %q (available: %s)", outputFormat, strings.Join(output.AvailableFormatterNames(), ", "))
			}

			if save, _ := cmd.Flags().GetBool("save"); save {
				filename, err := output.WriteFormatted(f, result, fileExtension(f.Name()))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
				return nil
			}

			data, err := f.Format(result)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	addInputFlags(cmd)
	cmd.Flags().StringP("format", "f", "console", "Output format (console, console-lite, json, yaml, csv)")
	cmd.Flags().Bool("save", false, "Write the report to a timestamped file instead of stdout")
	return cmd
}

func fileExtension(formatterName string) string {
	switch formatterName {
	case "json", "csv", "yaml":
		return formatterName
	default:
		return "txt"
	}
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/nlpay/internal/compare"
	"github.com/rgehrsitz/nlpay/internal/transform"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [income]",
		Short: "Compare a paycheck against alternative scenarios",
		Long: `Compare a base paycheck against built-in templates and ad-hoc transforms.

Examples:
  nlpay compare 80000 --with ruling,retired
  nlpay compare 60000 --with year_2026 --transform adjust_income:percent=5 --format csv
  nlpay compare --list-templates  # Show all available templates
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if list, _ := cmd.Flags().GetBool("list-templates"); list {
				fmt.Fprint(out, transform.GetTemplateHelp(transform.CreateBuiltInTemplates(engine.SupportedYears())))
				return nil
			}
			if list, _ := cmd.Flags().GetBool("list-transforms"); list {
				fmt.Fprintln(out, "Available Transforms:")
				for _, name := range transform.NewTransformRegistry().List() {
					fmt.Fprintf(out, "  %s\n", name)
				}
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("income required for comparison (use --list-templates to see available templates)")
			}

			templatesStr, _ := cmd.Flags().GetString("with")
			transforms, _ := cmd.Flags().GetStringArray("transform")
			templateNames := transform.ParseTemplateList(templatesStr)
			if len(templateNames) == 0 && len(transforms) == 0 {
				return fmt.Errorf("--with or --transform is required to specify alternatives (or use --list-templates)")
			}

			base, err := scenarioFromFlags(cmd, args[0], engine)
			if err != nil {
				return err
			}

			compareEngine := compare.NewCompareEngine(engine)
			compSet, err := compareEngine.Compare(cmd.Context(), base, compare.CompareOptions{
				Templates:  templateNames,
				Transforms: transforms,
			})
			if err != nil {
				return err
			}

			outputFormat, _ := cmd.Flags().GetString("format")
			var result string
			switch strings.ToLower(outputFormat) {
			case "table", "console":
				result = (&compare.TableFormatter{}).Format(compSet)
			case "compact":
				result = (&compare.TableFormatter{}).FormatCompact(compSet) + "\n"
			case "csv":
				result, err = (&compare.CSVFormatter{}).Format(compSet)
			case "json":
				result, err = (&compare.JSONFormatter{Pretty: true}).Format(compSet)
				result += "\n"
			default:
				return fmt.Errorf("unsupported format %q (available: table, compact, csv, json)", outputFormat)
			}
			if err != nil {
				return err
			}
			fmt.Fprint(out, result)
			return nil
		},
	}

	addInputFlags(cmd)
	cmd.Flags().String("with", "", "Comma-separated list of templates to compare")
	cmd.Flags().StringArray("transform", nil, "Transform spec such as set_year:year=2026 (repeatable)")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, compact, csv, json)")
	cmd.Flags().Bool("list-templates", false, "List all available scenario templates")
	cmd.Flags().Bool("list-transforms", false, "List all available transforms")
	return cmd
}

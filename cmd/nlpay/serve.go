package main

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/nlpay/internal/api"
	"github.com/rgehrsitz/nlpay/internal/tui"
)

const defaultAddr = ":8080"

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the paycheck calculator over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, logger, err := loadEngine(cmd)
			if err != nil {
				return err
			}

			addr, _ := cmd.Flags().GetString("addr")
			if addr == "" {
				addr = os.Getenv(envAddr)
			}
			if addr == "" {
				addr = defaultAddr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return api.NewServer(engine, logger).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().String("addr", "", "Listen address (default: $"+envAddr+" or "+defaultAddr+")")
	return cmd
}

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [income]",
		Short: "Explore paychecks interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := loadEngine(cmd)
			if err != nil {
				return err
			}

			income := decimal.NewFromInt(60000)
			if len(args) == 1 {
				if income, err = parseAmount("income", args[0]); err != nil {
					return err
				}
			}

			p := tea.NewProgram(tui.NewModel(engine, income), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}

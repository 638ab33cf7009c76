package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"tabboz/internal/api"
	"tabboz/internal/cli"
	"tabboz/internal/config"
	"tabboz/internal/game"
	"tabboz/internal/tui"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "tabboz",
		Short:        "Tabboz phone shop",
		SilenceUsage: true,
	}

	root.AddCommand(
		newPlayCmd(),
		newCatalogCmd(),
		newServeCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var dayKinds = map[string]int{
	"feriale":  game.DayWorking,
	"domenica": game.DaySunday,
	"festa":    game.DayHoliday,
}

func newPlayCmd() *cobra.Command {
	var (
		plain      bool
		funds      int64
		reputation int
		day        string
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Walk into the phone shop",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadCLIFromEnv()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("funds") {
				cfg.Game.StartingFunds = funds
			}
			if cmd.Flags().Changed("reputation") {
				cfg.Game.StartingReputation = reputation
			}
			if err := cfg.Game.Validate(); err != nil {
				return err
			}
			cal := cfg.Game.Calendar()
			if cmd.Flags().Changed("day") {
				kind, ok := dayKinds[strings.ToLower(strings.TrimSpace(day))]
				if !ok {
					return fmt.Errorf("unknown day %q (feriale/domenica/festa)", day)
				}
				cal = game.CalendarFromDayKind(kind)
			}

			logger, err := newTextLogger(cfg.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			cellular := game.NewCellular(cfg.Game.NewLedger(), cal, game.WithLogger(logger))

			var sh game.Shell
			if plain || cfg.Plain {
				sh = cli.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout())
			} else {
				sh = tui.New(cmd.InOrStdin(), cmd.OutOrStdout())
			}
			sh.OpenModal(cellular)
			renderSummary(cmd.OutOrStdout(), cellular.Ledger().Summary())
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "line prompts instead of the full-screen UI")
	cmd.Flags().Int64Var(&funds, "funds", game.StarterFunds, "starting funds")
	cmd.Flags().IntVar(&reputation, "reputation", game.StarterReputation, "starting reputation")
	cmd.Flags().StringVar(&day, "day", "feriale", "day kind: feriale, domenica, festa")
	return cmd
}

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List phones and plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderPhones(cmd.OutOrStdout(), game.DefaultPhones())
			renderPlans(cmd.OutOrStdout(), game.DefaultPlans())
			return nil
		},
	}
}

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg, err := config.LoadAPIFromEnv()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			logger, err := newLogger(cfg.LogLevel, os.Stdout)
			if err != nil {
				return err
			}
			return api.New(cfg, logger).ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	lvl, err := config.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// newTextLogger logs for interactive play.
func newTextLogger(level string, w io.Writer) (*slog.Logger, error) {
	lvl, err := config.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

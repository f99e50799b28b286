// Copyright (C) 2024 The async-timers Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Root command async-timers runs the demonstration event loop: a start delay
// arms a periodic heartbeat, a stop delay disarms it, and an exit delay ends
// the program.
//
// Usage:
//
//	async-timers --config /path/to/config
package root

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	cage_time "github.com/bradnelson/async-timers/internal/cage/time"
	"github.com/bradnelson/async-timers/internal/demo"
)

// Handler defines the command flags and logic.
type Handler struct {
	ConfigPath string
	Verbose    bool
}

// BindFlags binds the flags to Handler fields.
func (h *Handler) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&h.ConfigPath, "config", "c", "", "viper-readable config file")
	fs.BoolVarP(&h.Verbose, "verbose", "v", false, "enable debug logging and a config dump")
}

// Run performs the command logic.
func (h *Handler) Run(cmd *cobra.Command, args []string) error {
	log, err := h.newLogger()
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}
	defer log.Sync() //nolint:errcheck

	cfg := demo.DefaultConfig()
	if h.ConfigPath != "" {
		if cfg, err = demo.ReadConfigFile(h.ConfigPath); err != nil {
			return errors.WithStack(err)
		}
	}

	if h.Verbose {
		log.Debug("config loaded", zap.String("dump", spew.Sdump(cfg)))
	}

	log.Info(
		"run starting",
		zap.String("runId", ksuid.New().String()),
		zap.String("startedAt", cage_time.Datetime(cage_time.RealClock{})),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loop := demo.NewLoop(log, cfg)

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		return loop.Run(ctx)
	})

	// Print what the loop observes. The printer owns stdout; the loop owns
	// the timers.
	eg.Go(func() error {
		fmt.Printf("Periodic timer will start in %s\n", cage_time.DurationShort(cfg.GetStartDelay()))
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-loop.TickCh:
				fmt.Println("Periodic tick!")
			case phase := <-loop.PhaseCh:
				switch phase {
				case demo.PhaseStarted:
					fmt.Printf("Periodic timer will stop in %s\n", cage_time.DurationShort(cfg.GetStopDelay()))
				case demo.PhaseStopped:
					fmt.Printf("Periodic timer stopped. Will exit in %s\n", cage_time.DurationShort(cfg.GetExitDelay()))
				case demo.PhaseExited:
					fmt.Println("Bye!")
					return nil
				}
			}
		}
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return errors.WithStack(err)
	}
	return nil
}

func (h *Handler) newLogger() (*zap.Logger, error) {
	if h.Verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// NewCommand returns a cobra command instance based on Handler.
func NewCommand() *cobra.Command {
	h := &Handler{}
	cmd := &cobra.Command{
		Use:   "async-timers",
		Short: "Run the timer demonstration event loop",
		Example: strings.Join([]string{
			"async-timers",
			"async-timers --config /path/to/config --verbose",
		}, "\n"),
		SilenceUsage: true,
		RunE:         h.Run,
	}
	h.BindFlags(cmd.Flags())
	return cmd
}

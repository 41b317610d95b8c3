package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/mines"
	"github.com/vancomm/minefield/internal/session"
)

var log = logrus.New()

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := config.SetupLogging(cfg, log, mines.Log, session.Log); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	log.WithFields(cfg.Fields()).Debug("config")

	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	var outcome mines.Outcome
	err = supervise(mainCtx, session.NewPrompter(os.Stdin), func(ctx context.Context, p *session.Prompter) error {
		o, err := play(ctx, cfg, p)
		outcome = o
		return err
	})
	if err != nil {
		var ce *mines.ConfigError
		switch {
		case errors.As(err, &ce):
			fmt.Fprintln(os.Stderr, err)
		case errors.Is(err, context.Canceled), errors.Is(err, session.ErrInputClosed):
			fmt.Fprintln(os.Stderr, "Game abandoned.")
		default:
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		log.WithError(err).Error("exit")
		return 1
	}

	if outcome == mines.Loss {
		return 1
	}
	return 0
}

// supervise runs the game next to a watcher that closes the input once the
// game ends or a signal arrives, whichever comes first.
func supervise(
	ctx context.Context,
	prompter *session.Prompter,
	game func(context.Context, *session.Prompter) error,
) error {
	g, gCtx := errgroup.WithContext(ctx)
	gCtx, cancel := context.WithCancel(gCtx)
	defer cancel()

	g.Go(func() error {
		defer cancel()
		return game(gCtx, prompter)
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("shutting down, closing input")
		prompter.Close()
		return nil
	})
	return g.Wait()
}

func play(ctx context.Context, cfg *config.Config, p *session.Prompter) (mines.Outcome, error) {
	d, ok, err := cfg.ParseDifficulty()
	if err != nil {
		return mines.Continue, err
	}
	if !ok {
		d, err = session.ChooseDifficulty(ctx, p, os.Stdout)
		if err != nil {
			return mines.Continue, err
		}
	}

	s, err := session.New(d, cfg.Seed())
	if err != nil {
		return mines.Continue, err
	}
	return s.Play(ctx, p, os.Stdout)
}

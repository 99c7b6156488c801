package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/i582/cfmt/cmd/cfmt"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"github.com/kuredoro/termsnake/config"
	"github.com/kuredoro/termsnake/engine/console"
	"github.com/kuredoro/termsnake/engine/game"
)

func main() {
	configFlag := flag.String("config", config.DefaultPath, "path to a JSON config file")
	tickFlag := flag.Duration("tick", 0, "time between ticks, e.g. 100ms")
	seedFlag := flag.Int64("seed", 0, "seed for apple placement, 0 for the clock")
	logFlag := flag.String("log", "", "log file, empty string disables logging")
	skipCoverFlag := flag.Bool("skip-cover", false, "start playing without the title screen")
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		printErr("load config:", err)
		os.Exit(1)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tick":
			cfg.Tick = config.Duration(*tickFlag)
		case "seed":
			cfg.Seed = *seedFlag
		case "log":
			cfg.LogFile = *logFlag
		case "skip-cover":
			cfg.SkipCover = *skipCoverFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		printErr("invalid config:", err)
		os.Exit(1)
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		printErr("set up logging:", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(cfg); err != nil {
		log.Err(err).Msg("Game aborted")
		closeLog()
		printErr("snake:", err)
		os.Exit(1)
	}
}

// loadConfig falls back to the defaults when the default config file is
// absent. A file named on the command line must exist.
func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, os.ErrNotExist) && path == config.DefaultPath {
		return config.Default(), nil
	}
	return cfg, err
}

func setupLogging(cfg config.Config) (func(), error) {
	if cfg.LogFile == "" {
		log.Logger = zerolog.Nop()
		return func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}

	log.Logger = zerolog.New(f).
		Level(cfg.Level()).
		With().
		Timestamp().
		Str("session", uuid.NewString()).
		Logger()

	return func() { f.Close() }, nil
}

func run(cfg config.Config) error {
	if err := console.CheckTerminal(os.Stdout); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !cfg.SkipCover {
		play, err := console.RunCover(ctx, nil)
		if err != nil {
			return errors.Wrap(err, "title screen")
		}
		if !play {
			log.Info().Msg("Left from the title screen")
			return nil
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sess, err := console.NewSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	defer func() {
		if err := recover(); err != nil {
			sess.Close()
			log.Error().Interface("panic", err).Msg("panic")
			panic(err)
		}
	}()

	board, err := sess.Board(cfg.MaxWidth, cfg.MaxHeight)
	if err != nil {
		return err
	}

	log.Info().
		Int64("seed", seed).
		Int("width", board.Width).
		Int("height", board.Height).
		Msg("Session started")

	g := game.New(board, rand.New(rand.NewSource(uint64(seed))))

	keys := console.NewKeySource(sess.Screen)
	loop := console.NewLoop(g, sess.Screen, keys, time.Duration(cfg.Tick))

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(keys.Run)
	eg.Go(func() error {
		// Finalizing the screen is what stops the key source.
		defer sess.Close()
		return loop.Run(ctx)
	})

	return eg.Wait()
}

func printErr(m string, args ...interface{}) {
	if len(args) == 0 {
		panic("printErr: no arguments passed")
	}

	err := args[len(args)-1]

	header := m
	if len(args) > 1 {
		header = fmt.Sprintf(m, args[:len(args)-1]...)
	}

	cfmt.Printf("{{error:}}::lightRed|bold %s %v\n", header, err)
}

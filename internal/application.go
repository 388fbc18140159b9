package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-console/transport/console"
)

const driverRedis = "redis"

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	return run(ctx, logger, conf, os.Stdin, os.Stdout)
}

func run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	gameRepo, closeRepo, err := newGameRepository(ctx, conf.Storage)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := closeRepo(); closeErr != nil {
			log.Error("could not close game storage", "error", closeErr)
		}
	}()

	cli := console.New(logger, in, console.NewOutput(out, conf.Game.Color))
	manager := usecase.NewGameManager(logger, gameRepo, cli, cli)

	sessionID := conf.Game.SessionID
	if sessionID == "" {
		sessionID = pkg.GenerateNewSessionID()
	}

	log.Info("Starting game", "session", sessionID, "storage", conf.Storage.Driver)

	cli.ShowBanner()

	err = playSessions(ctx, cli, manager, conf.Game, sessionID)
	if errors.Is(err, apperror.ErrQuit) || errors.Is(err, context.Canceled) {
		log.Info("Player left", "reason", err)

		if conf.Storage.Driver == driverRedis {
			cli.ShowSaved(sessionID)
		}

		return nil
	}

	return err
}

// playSessions plays games until the player declines another one.
func playSessions(ctx context.Context, cli *console.Console, manager *usecase.GameManager, conf config.Game, sessionID string) error {
	for {
		session, err := askSession(ctx, cli, conf, sessionID)
		if err != nil {
			return err
		}

		if _, err = manager.Play(ctx, session); err != nil {
			return fmt.Errorf("game %s failed: %w", sessionID, err)
		}

		again, err := cli.AskYesNo(ctx, "Play again?")
		if err != nil {
			return err
		}

		if !again {
			return nil
		}
	}
}

func askSession(ctx context.Context, cli *console.Console, conf config.Game, sessionID string) (usecase.Session, error) {
	session := usecase.Session{ID: sessionID}

	var err error
	if conf.Mode == "ask" {
		session.Mode, err = cli.AskMode(ctx)
	} else {
		session.Mode, err = usecase.ParseMode(conf.Mode)
	}

	if err != nil {
		return session, err
	}

	if session.Mode != usecase.Computer {
		return session, nil
	}

	switch conf.FirstMove {
	case "human":
		session.HumanFirst = true
	case "computer":
		session.HumanFirst = false
	default:
		session.HumanFirst, err = cli.AskFirstMove(ctx)
	}

	return session, err
}

func newGameRepository(ctx context.Context, conf config.Storage) (repository.GameRepository, func() error, error) {
	if conf.Driver != driverRedis {
		return repository.NewMemoryGameRepository(), func() error { return nil }, nil
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewGameRepository(redisStorage.Connection, conf.SnapshotTTL), redisStorage.Close, nil
}

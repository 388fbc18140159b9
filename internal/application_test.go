package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
)

func testConfig(game config.Game) *config.Config {
	return &config.Config{
		LogLevel: "info",
		Game:     game,
		Storage:  config.Storage{Driver: "memory"},
	}
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Computer plays itself to a tie", func(t *testing.T) {
		// Given: auto mode and a player who declines another game
		conf := testConfig(config.Game{Mode: "auto", FirstMove: "ask", SessionID: "s1", Color: "never"})
		out := &bytes.Buffer{}

		// When: the application runs
		err := run(ctx, logger, conf, strings.NewReader("n\n"), out)

		// Then: one game is played to a tie
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Welcome to the ultimate man-machine showdown")
		assert.Equal(t, 1, strings.Count(out.String(), "It's a tie."))
		assert.Contains(t, out.String(), "Play again? (y/n): ")
	})

	t.Run("Play again starts a new game", func(t *testing.T) {
		conf := testConfig(config.Game{Mode: "auto", FirstMove: "ask", Color: "never"})
		out := &bytes.Buffer{}

		err := run(ctx, logger, conf, strings.NewReader("y\nn\n"), out)

		require.NoError(t, err)
		assert.Equal(t, 2, strings.Count(out.String(), "It's a tie."))
	})

	t.Run("Menu choices lead to a human game that can be quit", func(t *testing.T) {
		// Given: a player who picks mode 1, moves first and quits after one move
		conf := testConfig(config.Game{Mode: "ask", FirstMove: "ask", Color: "never"})
		out := &bytes.Buffer{}

		// When: the application runs
		err := run(ctx, logger, conf, strings.NewReader("1\ny\n0\nq\n"), out)

		// Then: quitting is not an error
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Choose a mode (1-3): ")
		assert.Contains(t, out.String(), "Then take the first move.")
		assert.Contains(t, out.String(), "I shall take square number 4.")
		assert.NotContains(t, out.String(), "Your game is saved.")
	})

	t.Run("Computer moves first when configured", func(t *testing.T) {
		conf := testConfig(config.Game{Mode: "computer", FirstMove: "computer", Color: "never"})
		out := &bytes.Buffer{}

		err := run(ctx, logger, conf, strings.NewReader(""), out)

		require.NoError(t, err)
		assert.NotContains(t, out.String(), "Do you require the first move?")
		assert.Contains(t, out.String(), "I shall take square number 4.")
	})

	t.Run("Unknown configured mode fails", func(t *testing.T) {
		conf := testConfig(config.Game{Mode: "online", Color: "never"})

		err := run(ctx, logger, conf, strings.NewReader(""), io.Discard)

		require.Error(t, err)
	})
}

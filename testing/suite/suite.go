package suite

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Config *config.Config
	Output *bytes.Buffer
}

// New returns a suite with default config, no colors and a captured output.
func New(t *testing.T) *Suite {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))

	conf, err := config.Load(filepath.Join(t.TempDir(), "config.yml"))
	if err != nil {
		t.Fatalf("could not load config: %v", err)
	}
	conf.NoColor = true

	return &Suite{
		T:      t,
		Logger: logger,
		Config: conf,
		Output: &bytes.Buffer{},
	}
}

// Input scripts the console: one move per line.
func (that *Suite) Input(lines ...string) io.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}

	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

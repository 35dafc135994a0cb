package app_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flatland/internal/app"
	"flatland/internal/domain"
)

func writeInput(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func newApp(t *testing.T, cfg app.Config) (*app.App, *bytes.Buffer) {
	t.Helper()
	cfg.LogOutput = io.Discard
	w, err := app.NewWire(cfg)
	require.NoError(t, err)
	var out bytes.Buffer
	return app.New(w, &out), &out
}

func TestRun_PrintsTotal(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.Input = writeInput(t, "45 2\n0 2\n10 2\n")
	a, out := newApp(t, cfg)

	require.NoError(t, a.Run())
	require.True(t, strings.HasSuffix(out.String(), "\n"))
	got, err := strconv.ParseFloat(strings.TrimSpace(out.String()), 64)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, got, 1e-9)
}

func TestRun_JSONSummary(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.Input = writeInput(t, "45 2\n0 2\n10 2\n")
	cfg.JSON = true
	a, out := newApp(t, cfg)

	require.NoError(t, a.Run())

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	total, err := strconv.ParseFloat(got["total"].(string), 64)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, total, 1e-9)
	assert.Equal(t, 2.0, got["count"])
	assert.Equal(t, 2.0, got["merged"])
	assert.NotEmpty(t, got["run_id"])
}

func TestRun_ErrorWritesNothing(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.Input = writeInput(t, "45 3\n0 2\n")
	a, out := newApp(t, cfg)

	err := a.Run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMissingLine))
	assert.Empty(t, out.String())
}

func TestRun_MissingFile(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.Input = filepath.Join(t.TempDir(), "nope.txt")
	a, _ := newApp(t, cfg)

	err := a.Run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRun_WritesMetricsFileOnFailure(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.Input = writeInput(t, "45 1\n0 2\n1 2\n")
	cfg.MetricsFile = filepath.Join(t.TempDir(), "flatland.prom")
	a, _ := newApp(t, cfg)

	err := a.Run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOutOfRange))

	b, err := os.ReadFile(cfg.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), `flatland_run_failures_total{kind="out of range"} 1`)
	assert.Contains(t, string(b), "flatland_inhabitants_added_total 1")
}

func TestFingerprint_Prints(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.Input = writeInput(t, "45 2\n0 2\n10 2\n")
	a, out := newApp(t, cfg)

	require.NoError(t, a.Fingerprint())
	assert.Regexp(t, `^Fingerprint: [0-9a-f]{20}\n$`, out.String())
}

func TestNewWire_BadLogLevel(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.LogLevel = "loud"

	_, err := app.NewWire(cfg)
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("FLATLAND_LOG_LEVEL", "debug")
	t.Setenv("FLATLAND_METRICS_FILE", "/tmp/x.prom")

	cfg := app.FromEnv(app.DefaultConfig())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/x.prom", cfg.MetricsFile)
	assert.Equal(t, "-", cfg.Input)
}

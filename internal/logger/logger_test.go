package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitJSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf, Options{Level: "warn", Format: "json"})
	t.Cleanup(func() { Init(&bytes.Buffer{}, Options{}) })

	Log.Info().Msg("hidden")
	Log.Warn().Str("k", "v").Msg("shown")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, `"message":"shown"`)
	require.Contains(t, out, `"k":"v"`)
}

func TestInitBadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf, Options{Level: "loud", Format: "json"})
	t.Cleanup(func() { Init(&bytes.Buffer{}, Options{}) })

	Log.Debug().Msg("debug")
	Log.Info().Msg("info")
	require.NotContains(t, buf.String(), `"message":"debug"`)
	require.Contains(t, buf.String(), `"message":"info"`)
}

func TestWithTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf, Options{Format: "json"})
	t.Cleanup(func() { Init(&bytes.Buffer{}, Options{}) })

	l := With("placeholder")
	l.Info().Msg("x")
	require.Contains(t, buf.String(), `"component":"placeholder"`)
}

func TestInitFileCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "statelab.log")
	closer, err := InitFile(path, Options{Format: "json"})
	require.NoError(t, err)
	Log.Info().Msg("to file")
	require.NoError(t, closer.Close())
	t.Cleanup(func() { Init(&bytes.Buffer{}, Options{}) })

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "to file")
}

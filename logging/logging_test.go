package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	t.Run("parsing the level", func(t *testing.T) {
		require.NoError(t, Setup("warn", false))
		require.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
	})

	t.Run("rejecting unknown levels", func(t *testing.T) {
		require.Error(t, Setup("loud", false))
	})
}

func TestNew(t *testing.T) {
	t.Run("json output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, false, false)

		logger.Info().Msg("battle over")

		entry := map[string]any{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "battle over", entry["message"])
		require.Equal(t, "info", entry["level"])
	})

	t.Run("console output without colour", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, true, false)

		logger.Warn().Msg("fallback")

		require.Contains(t, buf.String(), "WRN")
		require.Contains(t, buf.String(), "fallback")
		require.NotContains(t, buf.String(), "\x1b[", "No escape codes without a terminal")
	})
}

package logs

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewText(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := New(Options{Writer: buf, Level: slog.LevelDebug})
	logger.Debug("evaluate", "sequence", "2+3", "result", 5.0)
	require.Contains(t, buf.String(), "msg=evaluate")
	require.Contains(t, buf.String(), "sequence=2+3")
	require.Contains(t, buf.String(), "result=5")
}

func TestNewLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	logger := New(Options{Writer: buf, Level: level})
	logger.Info("hidden")
	require.Empty(t, buf.String())
	logger.Warn("shown")
	require.Contains(t, buf.String(), "msg=shown")

	level.Set(slog.LevelInfo)
	logger.Info("now shown")
	require.Contains(t, buf.String(), `msg="now shown"`)
}

func TestToJournalKey(t *testing.T) {
	require.Equal(t, "LOGS_SPAN", toJournalKey("logs.span"))
	require.Equal(t, "RESULT_2", toJournalKey("result-2"))
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	require.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	require.Equal(t, slog.LevelError, ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

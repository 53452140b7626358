package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/speakeasy-api/openapi-clientgen/logging"
	"github.com/speakeasy-api/openapi/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestNew_JSON_Success(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New(logging.WithWriter(&buf), logging.WithFormat(logging.FormatJSON), logging.WithLevel(slog.LevelDebug))

	logger.Debug("projected operation", slog.String("path", "/pets"))

	line := buf.String()
	require.True(t, gjson.Valid(line))
	assert.Equal(t, "DEBUG", gjson.Get(line, "level").String())
	assert.Equal(t, "projected operation", gjson.Get(line, "msg").String())
	assert.Equal(t, "/pets", gjson.Get(line, "path").String())
}

func TestNew_Level_Success(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New(logging.WithWriter(&buf), logging.WithLevel(slog.LevelWarn))

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected slog.Level
		wantErr  bool
	}{
		{input: "debug", expected: slog.LevelDebug},
		{input: "INFO", expected: slog.LevelInfo},
		{input: " warn ", expected: slog.LevelWarn},
		{input: "error", expected: slog.LevelError},
		{input: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			level, err := logging.ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, logging.ErrInvalidLogOption))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	format, err := logging.ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, logging.FormatJSON, format)

	_, err = logging.ParseFormat("logfmt")
	require.ErrorIs(t, err, logging.ErrInvalidLogOption)
}

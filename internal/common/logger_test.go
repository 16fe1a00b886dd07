package common

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "info", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupLogger(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	require.NoError(t, SetupLogger(&buf, slog.LevelInfo, "json"))

	LogDebug("hidden", Fields{"k": 1})
	LogInfo("derived codes", Fields{"count": 15})
	LogWarn("no files matched", Fields{"pattern": "*.txt"})
	LogError(errors.New("boom"), "export failed", Fields{"dir": "/tmp"})

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"derived codes"`)
	assert.Contains(t, out, `"count":15`)
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"error":"boom"`)

	assert.ErrorIs(t, SetupLogger(&buf, slog.LevelInfo, "xml"), ErrInvalidConfig)
}

func TestUserError(t *testing.T) {
	inner := errors.New("disk full")
	err := NewUserError("could not export codes", inner)

	assert.Equal(t, "could not export codes: disk full", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "plain", NewUserError("plain", nil).Error())
	assert.Empty(t, err.Hint)

	hinted := NewUserError(`group "auto" not found`, ErrNotFound).WithHint("Use 'sorteio groups set' to create it.")
	var target *UserError
	require.ErrorAs(t, fmt.Errorf("failed: %w", hinted), &target)
	assert.Equal(t, "Use 'sorteio groups set' to create it.", target.Hint)
	assert.ErrorIs(t, hinted, ErrNotFound)
}

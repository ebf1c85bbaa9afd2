package primesieve

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) *Logger {
	return NewLogger(slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

func TestNewLoggerDefaults(t *testing.T) {
	assert.NotNil(t, NewLogger(nil))
	assert.NotNil(t, NewTextLogger(slog.LevelInfo))
	assert.NotNil(t, NewJSONLogger(slog.LevelInfo))
	assert.NotNil(t, NoopLogger())
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf).WithBudget(100).WithCount(3).WithLimit(1_000)

	logger.Info("sieving")

	out := buf.String()
	assert.Contains(t, out, "mem=100")
	assert.Contains(t, out, "count=3")
	assert.Contains(t, out, "limit=1000")
}

func TestLogGeneration(t *testing.T) {
	t.Run("completed", func(t *testing.T) {
		var buf bytes.Buffer
		newBufferLogger(&buf).LogGeneration(3, 100, 1_000, 3, nil)
		assert.Contains(t, buf.String(), "prime generation completed")
	})

	t.Run("incomplete", func(t *testing.T) {
		var buf bytes.Buffer
		newBufferLogger(&buf).LogGeneration(9, 9, 10, 4, nil)
		out := buf.String()
		assert.Contains(t, out, "prime generation incomplete")
		assert.Contains(t, out, "found=4")
	})

	t.Run("failed", func(t *testing.T) {
		var buf bytes.Buffer
		newBufferLogger(&buf).LogGeneration(3, 3, 100, 0, assert.AnError)
		assert.Contains(t, buf.String(), "prime generation failed")
	})
}

func TestWithLoggerWiresWrappers(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferLogger(&buf)

	sec, err := PrimesBelow(4, 100, WithLogger(logger))
	require.NoError(t, err)
	require.True(t, sec.Complete())
	assert.Contains(t, buf.String(), "prime generation completed")

	buf.Reset()
	_, err = SieveFrom(5, 10, WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "sieve query completed")

	buf.Reset()
	_, err = PrimesAbove(3, 25, WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "prime generation completed")

	// A partial result is worth a warning, not a silent return.
	buf.Reset()
	sec, err = PrimesBelow(9, 10, WithLogger(logger))
	require.NoError(t, err)
	assert.False(t, sec.Complete())
	assert.Contains(t, buf.String(), "prime generation incomplete")

	// An error surfaces at error level.
	buf.Reset()
	_, err = PrimesBelow(3, 2, WithLogger(logger))
	require.Error(t, err)
	assert.Contains(t, buf.String(), "prime generation failed")
}

package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetGlobalLevel_FiltersExistingLoggers(t *testing.T) {
	previous := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(previous) })

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.TraceLevel)

	assert.Equal(t, zerolog.WarnLevel, SetGlobalLevel("warn"))
	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	SetGlobalLevel("debug")
	logger.Debug().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), zerolog.New(&buf))
	ctx = WithComponent(ctx, "watcher")

	FromContext(ctx).Info().Msg("started")
	assert.Contains(t, buf.String(), `"component":"watcher"`)
}

func TestFromContext_WithoutLoggerIsDisabled(t *testing.T) {
	assert.Equal(t, zerolog.Disabled, FromContext(context.Background()).GetLevel())
}

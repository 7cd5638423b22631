package logging_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bimmap/pkg/logging"
)

func TestContextFunctions(t *testing.T) {
	t.Run("WithRunID tags context and logger", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)
		ctx = logging.WithRunID(ctx, "run-123")

		assert.Equal(t, "run-123", logging.RunID(ctx))
		logging.FromContext(ctx).Info().Msg("started")
		tl.AssertContains(t, `"run_id":"run-123"`)
	})

	t.Run("RunID is empty without one", func(t *testing.T) {
		assert.Empty(t, logging.RunID(context.Background()))
	})

	t.Run("stage and sheet fields accumulate", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)
		ctx = logging.WithStage(ctx, "load")
		ctx = logging.WithSheet(ctx, "vp.xlsx", "Entity")

		logging.FromContext(ctx).Debug().Int("rows", 3).Msg("loaded")

		entries := tl.Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, "load", entries[0]["stage"])
		assert.Equal(t, "vp.xlsx", entries[0]["file"])
		assert.Equal(t, "Entity", entries[0]["sheet"])
		assert.EqualValues(t, 3, entries[0]["rows"])
	})

	t.Run("WithError", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)
		assert.Equal(t, ctx, logging.WithError(ctx, nil))

		ctx = logging.WithError(ctx, errors.New("sheet missing"))
		logging.FromContext(ctx).Error().Msg("failed")
		tl.AssertContains(t, `"error":"sheet missing"`)
	})

	t.Run("FromContext falls back to default", func(t *testing.T) {
		assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
		//nolint:staticcheck // nil context is tolerated
		assert.Same(t, logging.Default(), logging.FromContext(nil))
	})

	t.Run("WithLogger with nil uses default", func(t *testing.T) {
		ctx := logging.WithLogger(context.Background(), nil)
		assert.Same(t, logging.Default(), logging.FromContext(ctx))
	})
}

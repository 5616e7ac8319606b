package serdefmt_test

import (
	"testing"

	"github.com/bjaus/serdefmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapField(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	logger.Info("rendered",
		serdefmt.ZapField("value", serdefmt.Some(int32(42))),
		serdefmt.ZapField("point", point{X: 1, Y: 2}),
	)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "Some(42)", fields["value"])
	assert.Equal(t, "point { x: 1, y: 2 }", fields["point"])
}

func TestZapFieldFailure(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	failing := serdefmt.SerializableFunc(func(serdefmt.Serializer) error {
		return serdefmt.Custom("nope")
	})
	logger.Info("rendered", serdefmt.ZapField("value", failing))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "%!v(serdefmt: format error)", entries[0].ContextMap()["value"])
}

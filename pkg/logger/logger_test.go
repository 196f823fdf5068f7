package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"inventory/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithWriter("inventory-test", false, &buf)

	logger.Info().Str("op", "insert").Msg("product stored")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "inventory-test", entry["service"])
	assert.Equal(t, "insert", entry["op"])
	assert.Equal(t, "info", entry["level"])
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithWriter("inventory-test", false, &buf)

	require.True(t, logger.SetLevel("warn"))
	logger.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")

	assert.False(t, logger.SetLevel("loud"))
}

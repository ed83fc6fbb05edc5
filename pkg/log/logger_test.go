package log

import (
	"bytes"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Output: &buf})
	t.Cleanup(func() { Configure(Config{}) })

	logger := WithComponent("robot")
	logger.Debug().Str("module", "kinova").Msg("loaded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "robot", entry["component"])
	assert.Equal(t, "kinova", entry["module"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "loaded", entry["message"])
}

func TestConfigureLevel(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "warn", Output: &buf})
	t.Cleanup(func() { Configure(Config{}) })

	logger := Base()
	logger.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestConfigureConcurrent(t *testing.T) {
	t.Cleanup(func() { Configure(Config{}) })

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var buf bytes.Buffer
			Configure(Config{Level: "info", Output: &buf})
			logger := Base()
			logger.Info().Msg("configured")
		}()
	}
	wg.Wait()

	var buf bytes.Buffer
	Configure(Config{Output: &buf})
	logger := Base()
	logger.Info().Msg("stamped")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	stamp, ok := entry["time"].(string)
	require.True(t, ok, "time field missing: %v", entry)
	_, err := time.Parse(time.RFC3339, stamp)
	assert.NoError(t, err)
}

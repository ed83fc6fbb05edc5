package robot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultJointValue(t *testing.T) {
	m := newTestModule(t)
	require.NoError(t, m.SetStance("shoulder", 0.7))

	tests := []struct {
		joint string
		want  float64
	}{
		{"shoulder", 0.7}, // explicit
		{"elbow", 1.0},    // 0 is outside [0.5, 1.5]
		{"roll", 0},       // unbounded
	}
	for _, tt := range tests {
		got, err := m.DefaultJointValue(tt.joint)
		require.NoError(t, err, tt.joint)
		assert.InDelta(t, tt.want, got, 1e-12, tt.joint)
	}

	// Fallbacks are computed, never written back.
	assert.Equal(t, map[string][]float64{"shoulder": {0.7}}, m.Stance)

	_, err := m.DefaultJointValue("nope")
	assert.Error(t, err)
}

func TestSetStanceOutOfRange(t *testing.T) {
	m := newTestModule(t)

	err := m.SetStance("elbow", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside")

	assert.Error(t, m.SetStance("flange", 0))
	assert.Error(t, m.SetStance("nope", 0))
	assert.Empty(t, m.Stance)
}

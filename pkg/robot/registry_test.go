package robot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, name)
}

func TestRegistry(t *testing.T) {
	const name = "registry-test-arm"
	t.Cleanup(func() { unregister(name) })

	Register(name, func() (*Module, error) {
		return New("/tmp/arm", name), nil
	})
	assert.Contains(t, Names(), name)

	m, err := Create(name)
	require.NoError(t, err)
	assert.Equal(t, name, m.Name)

	assert.Panics(t, func() {
		Register(name, func() (*Module, error) { return nil, nil })
	})
	assert.Panics(t, func() { Register("", func() (*Module, error) { return nil, nil }) })
	assert.Panics(t, func() { Register("registry-test-nil", nil) })
}

func TestCreateErrors(t *testing.T) {
	_, err := Create("registry-test-missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no robot module")

	const name = "registry-test-broken"
	t.Cleanup(func() { unregister(name) })
	boom := errors.New("boom")
	Register(name, func() (*Module, error) { return nil, boom })

	_, err = Create(name)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), name)
}

package robot

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// Constructor builds a robot module.
type Constructor func() (*Module, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Constructor)
)

// Register makes a robot module available under name. It is meant to be called
// from init and panics when name is empty or already taken.
func Register(name string, ctor Constructor) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if name == "" {
		panic("robot: Register with empty name")
	}
	if ctor == nil {
		panic("robot: Register " + name + " with nil constructor")
	}
	if _, dup := registry[name]; dup {
		panic("robot: Register called twice for " + name)
	}
	registry[name] = ctor
}

// Create builds the robot module registered under name.
func Create(name string) (*Module, error) {
	registryMu.RLock()
	ctor, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, errors.Errorf("no robot module named %q", name)
	}
	m, err := ctor()
	if err != nil {
		return nil, errors.Wrapf(err, "create robot module %q", name)
	}
	return m, nil
}

// Names returns the registered module names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package testutil

import (
	"errors"

	"github.com/rmachado/aliasmgr/internal/core/domain/aliascfg"
	"github.com/rmachado/aliasmgr/internal/core/ports"
)

// MockConfigStore is a mock implementation of ports.ConfigStore for testing.
type MockConfigStore struct {
	LoadFunc func() (*aliascfg.Config, error)
	SaveFunc func(cfg *aliascfg.Config) error
	PathFunc func() string

	// Saved records every config passed to Save, in call order.
	Saved []*aliascfg.Config
}

func (m *MockConfigStore) Load() (*aliascfg.Config, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return aliascfg.New(), nil
}

func (m *MockConfigStore) Save(cfg *aliascfg.Config) error {
	m.Saved = append(m.Saved, cfg)
	if m.SaveFunc != nil {
		return m.SaveFunc(cfg)
	}
	return nil
}

func (m *MockConfigStore) Path() string {
	if m.PathFunc != nil {
		return m.PathFunc()
	}
	return "/tmp/aliases.toml"
}

var _ ports.ConfigStore = (*MockConfigStore)(nil)

// MockDeltaSink is a mock implementation of ports.DeltaSink that records the
// deltas it receives.
type MockDeltaSink struct {
	SendFunc func(delta string) error

	Deltas []string
}

func (m *MockDeltaSink) Send(delta string) error {
	m.Deltas = append(m.Deltas, delta)
	if m.SendFunc != nil {
		return m.SendFunc(delta)
	}
	return nil
}

var _ ports.DeltaSink = (*MockDeltaSink)(nil)

// MockPresetProvider is a mock implementation of ports.PresetProvider.
type MockPresetProvider struct {
	LoadPresetsFunc func(path string) ([]aliascfg.Alias, error)
}

func (m *MockPresetProvider) LoadPresets(path string) ([]aliascfg.Alias, error) {
	if m.LoadPresetsFunc != nil {
		return m.LoadPresetsFunc(path)
	}
	return nil, errors.New("MockPresetProvider: LoadPresetsFunc not implemented")
}

var _ ports.PresetProvider = (*MockPresetProvider)(nil)

package tailwind

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInvalidThreshold is returned when the repeater threshold is below 2.
var ErrInvalidThreshold = errors.New("repeater threshold must be at least 2")

// Settings controls the optional optimizations of a conversion.
type Settings struct {
	// SizeOptimization merges matching w-X h-X into size-X.
	SizeOptimization bool `koanf:"size" json:"sizeOptimization"`
	// RepeaterOptimization collapses repeated grid tracks into repeat().
	RepeaterOptimization bool `koanf:"repeater" json:"repeaterOptimization"`
	RepeaterThreshold    int  `koanf:"threshold" json:"repeaterThreshold"`
	// ArbitraryValues allows bracket and parenthesis classes.
	ArbitraryValues bool `koanf:"arbitrary" json:"arbitraryValues"`
	// PreferShortClassNames collapses symmetric sides into axis classes.
	PreferShortClassNames bool `koanf:"short" json:"preferShortClassNames"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		SizeOptimization:      true,
		RepeaterOptimization:  true,
		RepeaterThreshold:     3,
		ArbitraryValues:       true,
		PreferShortClassNames: true,
	}
}

// Validate checks the settings invariants.
func (s Settings) Validate() error {
	if s.RepeaterThreshold < 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidThreshold, s.RepeaterThreshold)
	}
	return nil
}

// SettingsStore is a concurrency-safe holder for hosts that edit settings
// interactively. Converters take a snapshot via Get.
type SettingsStore struct {
	mu       sync.RWMutex
	settings Settings
}

// NewSettingsStore returns a store initialized with DefaultSettings.
func NewSettingsStore() *SettingsStore {
	return &SettingsStore{settings: DefaultSettings()}
}

// Get returns a copy of the current settings.
func (s *SettingsStore) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Update applies fn to a copy of the settings and stores it if valid.
// An invalid result leaves the stored settings untouched.
func (s *SettingsStore) Update(fn func(*Settings)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.settings
	fn(&next)
	if err := next.Validate(); err != nil {
		return fmt.Errorf("updating settings: %w", err)
	}
	s.settings = next
	return nil
}

// Reset restores DefaultSettings.
func (s *SettingsStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = DefaultSettings()
}

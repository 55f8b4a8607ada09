package services

import (
	"context"
	"fmt"
	"strconv"

	"quick-notes/models"
)

// PreferenceService reads and toggles the persisted UI flags
type PreferenceService struct {
	store PreferenceStore
}

// NewPreferenceService creates a new preference service
func NewPreferenceService(store PreferenceStore) *PreferenceService {
	return &PreferenceService{store: store}
}

// Load reads every flag. A flag is on only when stored as "true".
func (ps *PreferenceService) Load(ctx context.Context) (models.Preferences, error) {
	var prefs models.Preferences

	darkMode, err := ps.flag(ctx, models.PrefDarkMode)
	if err != nil {
		return prefs, err
	}
	sidebarCollapsed, err := ps.flag(ctx, models.PrefSidebarCollapsed)
	if err != nil {
		return prefs, err
	}

	prefs.DarkMode = darkMode
	prefs.SidebarCollapsed = sidebarCollapsed
	return prefs, nil
}

// Toggle flips a flag and returns its new value
func (ps *PreferenceService) Toggle(ctx context.Context, key string) (bool, error) {
	if !isPreferenceKey(key) {
		return false, fmt.Errorf("%w: %q", ErrUnknownPreference, key)
	}

	current, err := ps.flag(ctx, key)
	if err != nil {
		return false, err
	}

	next := !current
	if err := ps.store.Set(ctx, key, strconv.FormatBool(next)); err != nil {
		return false, err
	}
	return next, nil
}

func (ps *PreferenceService) flag(ctx context.Context, key string) (bool, error) {
	value, _, err := ps.store.Get(ctx, key)
	if err != nil {
		return false, err
	}
	return value == "true", nil
}

func isPreferenceKey(key string) bool {
	return key == models.PrefDarkMode || key == models.PrefSidebarCollapsed
}

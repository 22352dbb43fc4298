package service

import (
	"fmt"

	"mk-watch-mods/models"
	"mk-watch-mods/repository"
)

// Select opens the details screen for a product of the active collection.
// An unknown id leaves the state on the grid and returns repository.ErrNotFound.
func Select(state *models.NavigationState, catalog repository.CatalogRepositoryInterface, id string) error {
	if _, err := catalog.Find(state.Collection, id); err != nil {
		state.Screen = models.ScreenGrid
		state.SelectedID = ""
		return err
	}
	state.Screen = models.ScreenDetails
	state.SelectedID = id
	return nil
}

// Back returns to the grid and clears the selection
func Back(state *models.NavigationState) {
	state.Screen = models.ScreenGrid
	state.SelectedID = ""
}

// SwitchCollection makes name the active collection and repairs the selection if needed
func SwitchCollection(state *models.NavigationState, catalog repository.CatalogRepositoryInterface, name string) error {
	known := false
	for _, c := range catalog.Collections() {
		if c == name {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("collection %q: %w", name, repository.ErrNotFound)
	}
	state.Collection = name
	Reconcile(state, catalog)
	return nil
}

// Reconcile sends a details screen whose product no longer resolves back to the grid.
// It reports whether a repair happened.
func Reconcile(state *models.NavigationState, catalog repository.CatalogRepositoryInterface) bool {
	if state.Screen != models.ScreenDetails {
		state.SelectedID = ""
		return false
	}
	if state.SelectedID != "" {
		if _, err := catalog.Find(state.Collection, state.SelectedID); err == nil {
			return false
		}
	}
	state.Screen = models.ScreenGrid
	state.SelectedID = ""
	return true
}

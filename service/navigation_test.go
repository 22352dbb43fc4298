package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mk-watch-mods/models"
	"mk-watch-mods/repository"
)

func TestNavigation_SelectAndBack(t *testing.T) {
	catalog := testCatalog(t)
	state := models.NewSession("s", "Homage").Nav

	require.NoError(t, Select(&state, catalog, "homage-diver-2"))
	assert.Equal(t, models.ScreenDetails, state.Screen)
	assert.Equal(t, "homage-diver-2", state.SelectedID)

	Back(&state)
	assert.Equal(t, models.ScreenGrid, state.Screen)
	assert.Empty(t, state.SelectedID)
}

func TestNavigation_SelectUnknownStaysOnGrid(t *testing.T) {
	catalog := testCatalog(t)
	state := models.NewSession("s", "Homage").Nav

	err := Select(&state, catalog, "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, models.ScreenGrid, state.Screen)
	assert.Empty(t, state.SelectedID)
}

func TestNavigation_ViewAfterSwitchingToOtherCollectionRedirectsToGrid(t *testing.T) {
	catalog := testCatalog(t)
	state := models.NewSession("s", "Custom Pieces").Nav

	require.NoError(t, Select(&state, catalog, "mystic-sea-1"))
	Back(&state)
	require.NoError(t, SwitchCollection(&state, catalog, "Homage"))

	err := Select(&state, catalog, "mystic-sea-1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, models.ScreenGrid, state.Screen)
	assert.Empty(t, state.SelectedID)
}

func TestNavigation_SwitchWhileOnDetailsRepairs(t *testing.T) {
	catalog := testCatalog(t)
	state := models.NewSession("s", "Custom Pieces").Nav
	require.NoError(t, Select(&state, catalog, "mystic-sea-1"))

	require.NoError(t, SwitchCollection(&state, catalog, "Homage"))
	assert.Equal(t, "Homage", state.Collection)
	assert.Equal(t, models.ScreenGrid, state.Screen)
	assert.Empty(t, state.SelectedID)
}

func TestNavigation_SwitchUnknownCollection(t *testing.T) {
	catalog := testCatalog(t)
	state := models.NewSession("s", "Homage").Nav
	require.NoError(t, Select(&state, catalog, "homage-diver-1"))

	err := SwitchCollection(&state, catalog, "Vintage")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, "Homage", state.Collection)
	assert.Equal(t, models.ScreenDetails, state.Screen)
}

func TestNavigation_Reconcile(t *testing.T) {
	catalog := testCatalog(t)

	tests := []struct {
		name     string
		state    models.NavigationState
		repaired bool
		want     models.NavigationState
	}{
		{
			name:  "grid untouched",
			state: models.NavigationState{Screen: models.ScreenGrid, Collection: "Homage"},
			want:  models.NavigationState{Screen: models.ScreenGrid, Collection: "Homage"},
		},
		{
			name:  "valid details untouched",
			state: models.NavigationState{Screen: models.ScreenDetails, Collection: "Homage", SelectedID: "homage-diver-1"},
			want:  models.NavigationState{Screen: models.ScreenDetails, Collection: "Homage", SelectedID: "homage-diver-1"},
		},
		{
			name:     "stale selection",
			state:    models.NavigationState{Screen: models.ScreenDetails, Collection: "Homage", SelectedID: "mystic-sea-1"},
			repaired: true,
			want:     models.NavigationState{Screen: models.ScreenGrid, Collection: "Homage"},
		},
		{
			name:     "details without selection",
			state:    models.NavigationState{Screen: models.ScreenDetails, Collection: "Homage"},
			repaired: true,
			want:     models.NavigationState{Screen: models.ScreenGrid, Collection: "Homage"},
		},
		{
			name:  "grid with leftover selection",
			state: models.NavigationState{Screen: models.ScreenGrid, Collection: "Homage", SelectedID: "homage-diver-1"},
			want:  models.NavigationState{Screen: models.ScreenGrid, Collection: "Homage"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := tt.state
			assert.Equal(t, tt.repaired, Reconcile(&state, catalog))
			assert.Equal(t, tt.want, state)
		})
	}
}

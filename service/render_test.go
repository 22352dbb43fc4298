package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mk-watch-mods/models"
)

func TestRenderer_Grid(t *testing.T) {
	catalog := testCatalog(t)
	r := NewRenderer(catalog, NewNotesRenderer())
	sess := models.NewSession("s", "Homage")

	view := r.Render(sess)
	assert.Equal(t, models.ScreenGrid, view.Screen)
	assert.Nil(t, view.Detail)
	assert.Equal(t, BrandTitle, view.Title)
	assert.Equal(t, []models.MenuEntry{
		{Name: "Custom Pieces"},
		{Name: "Homage", Active: true},
	}, view.Menu)

	require.Len(t, view.Cards, 3)
	assert.Equal(t, "Homage Diver 2", view.Cards[1].Name)
	require.NotNil(t, view.Cards[1].Carousel.Current)
	assert.Equal(t, "/images/Homage/homage-diver-2/0?size=700", view.Cards[1].Carousel.Current.URL)
	assert.Empty(t, view.Cards[1].Carousel.Thumbnails)

	// Product without images degrades to an inline message
	assert.Nil(t, view.Cards[2].Carousel.Current)
	assert.Equal(t, "No images available", view.Cards[2].Carousel.MediaError)
}

func TestRenderer_Details(t *testing.T) {
	catalog := testCatalog(t)
	r := NewRenderer(catalog, NewNotesRenderer())
	sess := models.NewSession("s", "Homage")
	require.NoError(t, Select(&sess.Nav, catalog, "homage-diver-2"))
	sess.Carousel["Homage/homage-diver-2"] = 2
	sess.Form = models.ReservationForm{Name: "Jane", Contact: "jane@example.com"}

	view := r.Render(sess)
	require.Equal(t, models.ScreenDetails, view.Screen)
	require.NotNil(t, view.Detail)
	assert.Empty(t, view.Cards)

	d := view.Detail
	assert.Equal(t, "Homage Diver 2", d.Name)
	assert.Contains(t, d.Specs, models.Spec{Label: "Dial Color", Value: "Black"})
	assert.Equal(t, "/images/Homage/homage-diver-2/2?size=900", d.Carousel.Current.URL)
	require.Len(t, d.Carousel.Thumbnails, 3)
	assert.True(t, d.Carousel.Thumbnails[2].Active)
	assert.Equal(t, "/images/Homage/homage-diver-2/0?size=700", d.Carousel.Thumbnails[0].URL)
	assert.Contains(t, string(d.Notes), "<strong>ceramic</strong>")
	assert.Equal(t, "Jane", d.Form.Name)
}

func TestRenderer_UnresolvedSelectionFallsBackToGrid(t *testing.T) {
	catalog := testCatalog(t)
	r := NewRenderer(catalog, NewNotesRenderer())
	sess := models.NewSession("s", "Homage")
	sess.Nav = models.NavigationState{Screen: models.ScreenDetails, Collection: "Homage", SelectedID: "mystic-sea-1"}

	view := r.Render(sess)
	assert.Equal(t, models.ScreenGrid, view.Screen)
	assert.Len(t, view.Cards, 3)
	// Render does not repair state; that is the controller's job
	assert.Equal(t, models.ScreenDetails, sess.Nav.Screen)
}

func TestImageURL_EscapesPathSegments(t *testing.T) {
	p := models.Product{ID: "a b", Collection: "Custom Pieces"}
	assert.Equal(t, "/images/Custom%20Pieces/a%20b/1?size=900", ImageURL(p, 1, EdgeHero))
}

func TestNotesRenderer_Sanitizes(t *testing.T) {
	n := NewNotesRenderer()
	out := string(n.Render("Hello **world** <script>alert(1)</script>"))
	assert.Contains(t, out, "<strong>world</strong>")
	assert.NotContains(t, out, "<script>")
	assert.Empty(t, n.Render(""))
}

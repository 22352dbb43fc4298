package service

import (
	"fmt"
	"net/url"

	"mk-watch-mods/models"
	"mk-watch-mods/repository"
)

const (
	BrandTitle   = "MK Watch Mods"
	BrandTagline = "High-Performance Automatic Timepieces"

	noImagesMessage = "No images available"
)

// Renderer builds the screen description of a session. It never mutates the session.
type Renderer struct {
	catalog repository.CatalogRepositoryInterface
	notes   *NotesRenderer
}

// NewRenderer creates a new Renderer
func NewRenderer(catalog repository.CatalogRepositoryInterface, notes *NotesRenderer) *Renderer {
	return &Renderer{catalog: catalog, notes: notes}
}

// Render describes everything the session should see right now
func (r *Renderer) Render(sess *models.Session) models.ScreenView {
	view := models.ScreenView{
		Title:      BrandTitle,
		Tagline:    BrandTagline,
		LogoURL:    "/logo",
		Screen:     models.ScreenGrid,
		Collection: sess.Nav.Collection,
		Flash:      sess.Flash,
	}

	for _, name := range r.catalog.Collections() {
		view.Menu = append(view.Menu, models.MenuEntry{Name: name, Active: name == sess.Nav.Collection})
	}

	carousel := NewCarousel(sess.Carousel)

	if sess.Nav.Screen == models.ScreenDetails {
		if p, err := r.catalog.Find(sess.Nav.Collection, sess.Nav.SelectedID); err == nil {
			view.Screen = models.ScreenDetails
			view.Detail = &models.Detail{
				ID:         p.ID,
				Name:       p.Name,
				Price:      p.Price,
				Collection: p.Collection,
				Carousel:   carouselView(carousel, *p, EdgeHero, true),
				Specs:      fullSpecs(*p),
				Notes:      r.notes.Render(p.Notes),
				Form:       sess.Form,
			}
			return view
		}
	}

	for _, p := range r.catalog.List(sess.Nav.Collection) {
		view.Cards = append(view.Cards, models.Card{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Carousel: carouselView(carousel, p, EdgeCard, false),
			KeySpecs: keySpecs(p),
		})
	}
	return view
}

// ImageURL is the address of one normalized product image
func ImageURL(p models.Product, index, edge int) string {
	return fmt.Sprintf("/images/%s/%s/%d?size=%d",
		url.PathEscape(p.Collection), url.PathEscape(p.ID), index, edge)
}

func carouselView(c Carousel, p models.Product, edge int, thumbnails bool) models.CarouselView {
	view := models.CarouselView{Count: len(p.Images)}
	if _, ok := c.Current(p); !ok {
		view.MediaError = noImagesMessage
		return view
	}

	current := c.Index(p)
	view.Current = &models.ImageView{URL: ImageURL(p, current, edge), Index: current, Active: true}
	if thumbnails {
		for i := range p.Images {
			view.Thumbnails = append(view.Thumbnails, models.ImageView{
				URL:    ImageURL(p, i, EdgeCard),
				Index:  i,
				Active: i == current,
			})
		}
	}
	return view
}

func keySpecs(p models.Product) []models.Spec {
	return nonEmpty([]models.Spec{
		{Label: "Diameter", Value: p.Diameter},
		{Label: "Movement", Value: p.Movement},
		{Label: "Water Resistance", Value: p.WaterResistance},
	})
}

func fullSpecs(p models.Product) []models.Spec {
	return nonEmpty([]models.Spec{
		{Label: "Diameter", Value: p.Diameter},
		{Label: "Thickness", Value: p.Thickness},
		{Label: "Lug Width", Value: p.LugWidth},
		{Label: "Movement", Value: p.Movement},
		{Label: "Case Material", Value: p.CaseMaterial},
		{Label: "Dial Color", Value: p.DialColor},
		{Label: "Bezel", Value: p.Bezel},
		{Label: "Crystal", Value: p.Crystal},
		{Label: "Water Resistance", Value: p.WaterResistance},
		{Label: "Strap", Value: p.Strap},
	})
}

func nonEmpty(specs []models.Spec) []models.Spec {
	out := specs[:0]
	for _, s := range specs {
		if s.Value != "" {
			out = append(out, s)
		}
	}
	return out
}

package models

import "html/template"

// Screen view models produced by the renderer. Templates only read these.

// MenuEntry is one collection in the side menu
type MenuEntry struct {
	Name   string
	Active bool
}

// ImageView is one displayable image slot
type ImageView struct {
	URL    string
	Index  int
	Active bool
}

// CarouselView is the carousel of a single product
type CarouselView struct {
	Current    *ImageView // nil when the product has no images
	Thumbnails []ImageView
	Count      int
	MediaError string // set when there is nothing to show
}

// Spec is one labelled row of a spec sheet
type Spec struct {
	Label string
	Value string
}

// Card is a product card on the grid screen
type Card struct {
	ID       string
	Name     string
	Price    string
	Carousel CarouselView
	KeySpecs []Spec
}

// Detail is the details screen of a single product
type Detail struct {
	ID         string
	Name       string
	Price      string
	Collection string
	Carousel   CarouselView
	Specs      []Spec
	Notes      template.HTML
	Form       ReservationForm
}

// ScreenView is the complete description of what a session should see
type ScreenView struct {
	Title      string
	Tagline    string
	LogoURL    string
	Screen     Screen
	Menu       []MenuEntry
	Collection string
	Cards      []Card
	Detail     *Detail
	Flash      *Flash
}

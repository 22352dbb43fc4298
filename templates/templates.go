// Package templates embeds the storefront HTML templates.
package templates

import (
	"embed"
	"html/template"

	"mk-watch-mods/models"
)

//go:embed *.html
var files embed.FS

type carouselArgs struct {
	ID       string
	Carousel models.CarouselView
}

var funcs = template.FuncMap{
	"carouselArgs": func(id string, c models.CarouselView) carouselArgs {
		return carouselArgs{ID: id, Carousel: c}
	},
	"inc": func(i int) int { return i + 1 },
}

// Storefront parses the storefront page template
func Storefront() (*template.Template, error) {
	return template.New("storefront.html").Funcs(funcs).ParseFS(files, "storefront.html")
}

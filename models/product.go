package models

// Product represents a single watch listed in a collection
type Product struct {
	ID              string   `yaml:"id" json:"id"`
	Name            string   `yaml:"name" json:"name"`
	Price           string   `yaml:"price" json:"price"` // Display string (e.g., "$295")
	Images          []string `yaml:"images" json:"images"`
	Diameter        string   `yaml:"diameter" json:"diameter"`
	Thickness       string   `yaml:"thickness" json:"thickness"`
	LugWidth        string   `yaml:"lug_width" json:"lugWidth"`
	Movement        string   `yaml:"movement" json:"movement"`
	CaseMaterial    string   `yaml:"case_material" json:"caseMaterial"`
	DialColor       string   `yaml:"dial_color" json:"dialColor"`
	Bezel           string   `yaml:"bezel" json:"bezel"`
	Crystal         string   `yaml:"crystal" json:"crystal"`
	WaterResistance string   `yaml:"water_resistance" json:"waterResistance"`
	Strap           string   `yaml:"strap" json:"strap"`
	Notes           string   `yaml:"notes" json:"notes"` // Markdown
	// Collection is filled in by the catalog loader
	Collection string `yaml:"-" json:"collection"`
}

// Key identifies a product across collections
func (p Product) Key() string {
	return p.Collection + "/" + p.ID
}

// Collection is a named, ordered group of products
type Collection struct {
	Name     string    `yaml:"name" json:"name"`
	Products []Product `yaml:"products" json:"products"`
}

// CatalogFile is the on-disk layout of the catalog
type CatalogFile struct {
	Collections []Collection `yaml:"collections"`
}

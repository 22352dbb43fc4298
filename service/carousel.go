package service

import (
	"fmt"

	"mk-watch-mods/models"
)

// Carousel tracks the image offset of each product for one session.
// It is a view over the session's offset map; it holds no state of its own.
type Carousel struct {
	offsets map[string]int
}

// NewCarousel wraps a session's offset map
func NewCarousel(offsets map[string]int) Carousel {
	return Carousel{offsets: offsets}
}

// Index returns the clamped offset for the product. Zero when it has no images.
func (c Carousel) Index(p models.Product) int {
	return clampIndex(c.offsets[p.Key()], len(p.Images))
}

// Current returns the image path at the current offset
func (c Carousel) Current(p models.Product) (string, bool) {
	if len(p.Images) == 0 {
		return "", false
	}
	return p.Images[c.Index(p)], true
}

// Advance moves the offset by dir (-1 or +1), wrapping around
func (c Carousel) Advance(p models.Product, dir int) error {
	if dir != -1 && dir != 1 {
		return fmt.Errorf("invalid carousel direction %d", dir)
	}
	n := len(p.Images)
	if n == 0 {
		return ErrEmptyMedia
	}
	i := clampIndex(c.offsets[p.Key()], n)
	c.offsets[p.Key()] = ((i+dir)%n + n) % n
	return nil
}

// Set stores an offset as given. Reads clamp it.
func (c Carousel) Set(p models.Product, index int) {
	c.offsets[p.Key()] = index
}

func clampIndex(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

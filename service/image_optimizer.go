package service

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

const (
	// Edge lengths of the normalized square images
	EdgeCard = 700 // grid cards and detail thumbnails
	EdgeHero = 900 // detail hero image

	jpegQuality = 85
)

// ParseEdge validates a requested edge length; empty means EdgeCard
func ParseEdge(raw string) (int, error) {
	if raw == "" {
		return EdgeCard, nil
	}
	edge, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", raw, err)
	}
	if edge != EdgeCard && edge != EdgeHero {
		return 0, fmt.Errorf("unsupported size %d", edge)
	}
	return edge, nil
}

// NormalizeSquare crops the centered square of img and scales it to edge x edge
func NormalizeSquare(img image.Image, edge int) *image.NRGBA {
	b := img.Bounds()
	side := b.Dx()
	if b.Dy() < side {
		side = b.Dy()
	}
	square := imaging.CropCenter(img, side, side)
	return imaging.Resize(square, edge, edge, imaging.Lanczos)
}

// TrimTransparent crops img to the bounding box of its non-transparent pixels.
// A fully transparent image is returned unchanged.
func TrimTransparent(img image.Image) *image.NRGBA {
	src := imaging.Clone(img)
	b := src.Bounds()
	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X-1, b.Min.Y-1

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if src.NRGBAAt(x, y).A == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if maxX < minX || maxY < minY {
		return src
	}
	return imaging.Crop(src, image.Rect(minX, minY, maxX+1, maxY+1))
}

// ImageService loads, normalizes and caches product and logo images
type ImageService struct {
	assetsDir string
	cacheDir  string
	log       *zap.SugaredLogger
}

// NewImageService creates a new ImageService
func NewImageService(assetsDir, cacheDir string, log *zap.SugaredLogger) *ImageService {
	return &ImageService{
		assetsDir: assetsDir,
		cacheDir:  cacheDir,
		log:       log,
	}
}

// EnsureCacheDir ensures the cache directory exists, creates it if it doesn't
func (s *ImageService) EnsureCacheDir() error {
	if err := os.MkdirAll(s.cacheDir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	return nil
}

// CachePath returns the cache file path for a source image and variant
func (s *ImageService) CachePath(path string, variant string, ext string) string {
	sum := sha256.Sum256([]byte(path))
	filename := fmt.Sprintf("%s_%s%s", hex.EncodeToString(sum[:8]), variant, ext)
	return filepath.Join(s.cacheDir, filename)
}

// Square returns the JPEG bytes of the image at path normalized to edge
func (s *ImageService) Square(path string, edge int) ([]byte, error) {
	cachePath := s.CachePath(path, strconv.Itoa(edge), ".jpg")
	if data, ok := s.readCache(cachePath); ok {
		return data, nil
	}

	img, err := imaging.Open(filepath.Join(s.assetsDir, path))
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}

	s.log.Debugf("📸 Image decoded: path=%s, bounds=%v", path, img.Bounds())

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, NormalizeSquare(img, edge), imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}

	data := buf.Bytes()
	s.saveCache(cachePath, data)
	return data, nil
}

// Logo returns the PNG bytes of the logo with transparent borders trimmed
func (s *ImageService) Logo(path string) ([]byte, error) {
	cachePath := s.CachePath(path, "trim", ".png")
	if data, ok := s.readCache(cachePath); ok {
		return data, nil
	}

	img, err := imaging.Open(filepath.Join(s.assetsDir, path))
	if err != nil {
		return nil, fmt.Errorf("failed to open logo %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, TrimTransparent(img), imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode to PNG: %w", err)
	}

	data := buf.Bytes()
	s.saveCache(cachePath, data)
	return data, nil
}

func (s *ImageService) readCache(cachePath string) ([]byte, bool) {
	data, err := os.ReadFile(cachePath)
	if err != nil {
		return nil, false
	}
	return data, true
}

// saveCache never fails the request; a broken cache only costs a re-encode
func (s *ImageService) saveCache(cachePath string, data []byte) {
	if err := os.MkdirAll(filepath.Dir(cachePath), 0755); err != nil {
		s.log.Warnf("⚠️  Failed to create cache directory: %v", err)
		return
	}
	if err := os.WriteFile(cachePath, data, 0644); err != nil {
		s.log.Warnf("⚠️  Failed to write to cache: %v", err)
		return
	}
	s.log.Debugf("✓ Image cached: %s", cachePath)
}

// placeholderSVG is served in place of an image that cannot be loaded
const placeholderSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="%[1]d" height="%[1]d" viewBox="0 0 %[1]d %[1]d">` +
	`<rect width="100%%" height="100%%" fill="#eeeeee"/>` +
	`<text x="50%%" y="50%%" text-anchor="middle" dominant-baseline="middle" font-family="sans-serif" font-size="28" fill="#999999">image unavailable</text>` +
	`</svg>`

// Placeholder returns an SVG error indicator of the given edge length
func Placeholder(edge int) []byte {
	return []byte(fmt.Sprintf(placeholderSVG, edge))
}

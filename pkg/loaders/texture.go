package loaders

import (
	"bytes"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Texture is an encoded PNG or JPEG image kept as-is for embedding in exports
type Texture struct {
	Name     string
	Width    int
	Height   int
	MimeType string
	Data     []byte
}

// LoadTexture reads a PNG or JPEG image and checks that it decodes
func LoadTexture(filename string) (*Texture, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read texture file")
	}

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return NewTexture(name, data)
}

// NewTexture wraps encoded image bytes, detecting the format from the header
func NewTexture(name string, data []byte) (*Texture, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode texture %q", name)
	}

	return &Texture{
		Name:     name,
		Width:    cfg.Width,
		Height:   cfg.Height,
		MimeType: "image/" + format,
		Data:     data,
	}, nil
}

package ogimage

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
)

const (
	Width   = 1200
	Height  = 630
	Padding = 48

	fontSize    = 64
	lineSpacing = 1.3
)

var titleFont *truetype.Font

func init() {
	f, err := truetype.Parse(gobold.TTF)
	if err != nil {
		panic(fmt.Sprintf("ogimage: failed to parse font: %v", err))
	}
	titleFont = f
}

// Render draws title onto a white card and writes it as PNG.
func Render(w io.Writer, title string) error {
	dc := gg.NewContext(Width, Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetFontFace(truetype.NewFace(titleFont, &truetype.Options{Size: fontSize}))
	dc.SetRGB(0, 0, 0)
	dc.DrawStringWrapped(strings.TrimSpace(title), Padding, Padding, 0, 0,
		Width-2*Padding, lineSpacing, gg.AlignLeft)

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode og image: %w", err)
	}
	return nil
}

// URL returns the address of the generated card for title.
func URL(baseURL, title string) string {
	return strings.TrimRight(baseURL, "/") + "/og?title=" + url.QueryEscape(title)
}

// ResolveImage returns the image declared by a post, falling back to a
// generated card for its title.
func ResolveImage(baseURL, title, image string) string {
	if image != "" {
		return image
	}
	return URL(baseURL, title)
}

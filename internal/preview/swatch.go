package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jmylchreest/okbase16/internal/colour"
	"github.com/jmylchreest/okbase16/internal/plugin/output"
)

// Swatch layout in pixels.
const (
	SwatchColumns    = 4
	SwatchCellWidth  = 160
	SwatchCellHeight = 96
	swatchPadding    = 8
)

// SwatchImage draws the 16 slots as a 4x4 grid, each cell labelled with its
// slot name and hex in black or white, whichever contrasts more.
func SwatchImage(theme *output.Theme) *image.RGBA {
	rows := (colour.SlotCount + SwatchColumns - 1) / SwatchColumns
	img := image.NewRGBA(image.Rect(0, 0, SwatchColumns*SwatchCellWidth, rows*SwatchCellHeight))

	face := basicfont.Face7x13
	for i, c := range theme.Colours() {
		x0 := (i % SwatchColumns) * SwatchCellWidth
		y0 := (i / SwatchColumns) * SwatchCellHeight
		cell := image.Rect(x0, y0, x0+SwatchCellWidth, y0+SwatchCellHeight)

		r, g, b := c.RGBValues()
		fill := color.RGBA{R: r, G: g, B: b, A: 0xff}
		draw.Draw(img, cell, image.NewUniform(fill), image.Point{}, draw.Src)

		d := &font.Drawer{Dst: img, Src: image.NewUniform(labelColour(c.Hex())), Face: face}
		lineHeight := face.Metrics().Height.Ceil()
		baseline := y0 + SwatchCellHeight - swatchPadding - lineHeight
		for _, text := range []string{c.Name(), c.Hex()} {
			d.Dot = fixed.P(x0+swatchPadding, baseline)
			d.DrawString(text)
			baseline += lineHeight
		}
	}
	return img
}

// Swatch encodes SwatchImage as PNG.
func Swatch(w io.Writer, theme *output.Theme) error {
	if err := png.Encode(w, SwatchImage(theme)); err != nil {
		return fmt.Errorf("failed to encode swatch: %w", err)
	}
	return nil
}

func labelColour(hex string) color.Color {
	if colour.ContrastRatio(hex, "#000000") >= colour.ContrastRatio(hex, "#ffffff") {
		return color.Black
	}
	return color.White
}

package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// baseSize is the size the numeral is laid out for before scaling
const baseSize = 16

type style struct {
	fill color.NRGBA
	ink  color.NRGBA
}

func parseStyle(fill, ink string) (style, error) {
	f, err := parseHex(fill)
	if err != nil {
		return style{}, fmt.Errorf("fill: %w", err)
	}
	i, err := parseHex(ink)
	if err != nil {
		return style{}, fmt.Errorf("ink: %w", err)
	}
	return style{fill: f, ink: i}, nil
}

func parseHex(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("%q is not #rrggbb", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%q is not #rrggbb", s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

// renderGlyph draws label in ink on a filled disc
func renderGlyph(label string, size int, st style) *image.NRGBA {
	img := disc(size, st.fill)

	text := textMask(label, st.ink)
	tb := text.Bounds()

	// Scale the 13px-tall bitmap font to the icon, keeping a one base-pixel margin
	scale := float64(size) / baseSize
	maxW := float64(size) - 2*scale
	if w := float64(tb.Dx()) * scale; w > maxW {
		scale *= maxW / w
	}
	w := int(math.Round(float64(tb.Dx()) * scale))
	h := int(math.Round(float64(tb.Dy()) * scale))
	x0 := (size - w) / 2
	y0 := (size - h) / 2
	draw.ApproxBiLinear.Scale(img, image.Rect(x0, y0, x0+w, y0+h), text, tb, draw.Over, nil)

	return img
}

// textMask renders label tightly cropped to the inked rows
func textMask(label string, ink color.NRGBA) *image.NRGBA {
	face := basicfont.Face7x13
	width := font.MeasureString(face, label).Ceil()
	metrics := face.Metrics()
	height := (metrics.Ascent + metrics.Descent).Ceil()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ink),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: metrics.Ascent},
	}
	d.DrawString(label)

	return img.SubImage(inkBounds(img)).(*image.NRGBA)
}

// inkBounds returns the smallest rectangle holding every non-transparent pixel
func inkBounds(img *image.NRGBA) image.Rectangle {
	b := img.Bounds()
	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X, b.Min.Y
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.NRGBAAt(x, y).A == 0 {
				continue
			}
			minX, minY = min(minX, x), min(minY, y)
			maxX, maxY = max(maxX, x+1), max(maxY, y+1)
		}
	}
	if minX >= maxX {
		return b
	}
	return image.Rect(minX, minY, maxX, maxY)
}

// disc draws an anti-aliased filled circle centred in a size x size image
func disc(size int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	center := float64(size) / 2
	radius := center - 0.5
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist <= radius-0.5 {
				img.SetNRGBA(x, y, c)
			} else if dist <= radius+0.5 {
				alpha := uint8(float64(c.A) * (radius + 0.5 - dist))
				img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha})
			}
		}
	}
	return img
}

// renderGlyphICO renders label at every size and packs the PNGs into one ICO
func renderGlyphICO(label string, sizes []int, st style) ([]byte, error) {
	pngs := make([][]byte, 0, len(sizes))
	for _, size := range sizes {
		var buf bytes.Buffer
		if err := png.Encode(&buf, renderGlyph(label, size, st)); err != nil {
			return nil, fmt.Errorf("png encode %d: %w", size, err)
		}
		pngs = append(pngs, buf.Bytes())
	}
	return encodeICO(sizes, pngs)
}

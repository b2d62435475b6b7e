package domain

import (
	"image"
	"image/color"
)

// RGBImage is an in-memory image with three 8-bit channels per pixel and no alpha.
type RGBImage struct {
	// Pix holds the pixels in R, G, B order, row by row.
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

func NewRGBImage(r image.Rectangle) *RGBImage {
	w, h := r.Dx(), r.Dy()
	return &RGBImage{
		Pix:    make([]uint8, 3*w*h),
		Stride: 3 * w,
		Rect:   r,
	}
}

const RGBChannels = 3

func (p *RGBImage) ColorModel() color.Model { return color.RGBAModel }

func (p *RGBImage) Bounds() image.Rectangle { return p.Rect }

func (p *RGBImage) At(x, y int) color.Color {
	return p.RGBAAt(x, y)
}

func (p *RGBImage) RGBAAt(x, y int) color.RGBA {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return color.RGBA{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	return color.RGBA{R: s[0], G: s[1], B: s[2], A: 0xff}
}

func (p *RGBImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	s := p.Pix[i : i+3 : i+3]
	s[0] = nc.R
	s[1] = nc.G
	s[2] = nc.B
}

func (p *RGBImage) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

// Opaque reports true: there is no alpha channel.
func (p *RGBImage) Opaque() bool { return true }

// DecodedImage is the normalized form of an upload that is handed to the analyzer.
type DecodedImage struct {
	Image  *RGBImage
	Format string
}

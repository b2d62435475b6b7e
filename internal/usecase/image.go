package usecase

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/KianoushAmirpour/medical_image_analyzer/internal/domain"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// MaxImagePixels caps width*height before any pixel buffer is allocated.
const MaxImagePixels int64 = 178956970

// DecodeImage parses raw upload bytes and normalizes the pixels to three channels.
func DecodeImage(data []byte) (decoded *domain.DecodedImage, err error) {
	defer func() {
		if r := recover(); r != nil {
			decoded = nil
			err = decodeFailure(fmt.Errorf("decoder panic: %v", r))
		}
	}()

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, decodeFailure(err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, decodeFailure(fmt.Errorf("invalid dimensions %dx%d", cfg.Width, cfg.Height))
	}
	if pixels := int64(cfg.Width) * int64(cfg.Height); pixels > MaxImagePixels {
		return nil, decodeFailure(fmt.Errorf("image has %d pixels, limit is %d", pixels, MaxImagePixels))
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, decodeFailure(err)
	}

	return &domain.DecodedImage{Image: ToRGB(img), Format: format}, nil
}

// ToRGB converts any image to an RGBImage with the same bounds. Alpha is discarded
// without compositing, so each pixel keeps its non-premultiplied color.
func ToRGB(img image.Image) *domain.RGBImage {
	if rgb, ok := img.(*domain.RGBImage); ok {
		return rgb
	}

	b := img.Bounds()
	dst := domain.NewRGBImage(b)

	if src, ok := img.(*image.NRGBA); ok {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			si := src.PixOffset(b.Min.X, y)
			di := dst.PixOffset(b.Min.X, y)
			for x := b.Min.X; x < b.Max.X; x++ {
				dst.Pix[di+0] = src.Pix[si+0]
				dst.Pix[di+1] = src.Pix[si+1]
				dst.Pix[di+2] = src.Pix[si+2]
				si += 4
				di += domain.RGBChannels
			}
		}
		return dst
	}

	if src, ok := img.(*image.RGBA); ok {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			si := src.PixOffset(b.Min.X, y)
			di := dst.PixOffset(b.Min.X, y)
			for x := b.Min.X; x < b.Max.X; x++ {
				a := src.Pix[si+3]
				dst.Pix[di+0] = unpremultiply(src.Pix[si+0], a)
				dst.Pix[di+1] = unpremultiply(src.Pix[si+1], a)
				dst.Pix[di+2] = unpremultiply(src.Pix[si+2], a)
				si += 4
				di += domain.RGBChannels
			}
		}
		return dst
	}

	if src, ok := img.(*image.YCbCr); ok {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			di := dst.PixOffset(b.Min.X, y)
			for x := b.Min.X; x < b.Max.X; x++ {
				yi := src.YOffset(x, y)
				ci := src.COffset(x, y)
				r, g, bl := color.YCbCrToRGB(src.Y[yi], src.Cb[ci], src.Cr[ci])
				dst.Pix[di+0] = r
				dst.Pix[di+1] = g
				dst.Pix[di+2] = bl
				di += domain.RGBChannels
			}
		}
		return dst
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			i := dst.PixOffset(x, y)
			dst.Pix[i+0] = c.R
			dst.Pix[i+1] = c.G
			dst.Pix[i+2] = c.B
		}
	}
	return dst
}

// unpremultiply matches color.NRGBAModel on 8-bit premultiplied input.
func unpremultiply(c, a uint8) uint8 {
	switch a {
	case 0xff:
		return c
	case 0:
		return 0
	}
	c16 := uint32(c) * 0x101
	a16 := uint32(a) * 0x101
	return uint8(((c16 * 0xffff) / a16) >> 8)
}

func decodeFailure(cause error) *domain.DomainError {
	return domain.NewDomainError(domain.ErrCodeDecodeFailure, domain.ErrCouldNotProcessImage.Message, cause)
}

package image

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the file format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrPlaneCount is returned when planes cannot form a gray or RGB image.
	ErrPlaneCount = errors.New("image: need 1 or 3 planes of equal size")
)

// Codec identifies a container format.
type Codec uint8

const (
	// CodecPNG is Portable Network Graphics (8 and 16 bit).
	CodecPNG Codec = iota

	// CodecTIFF is uncompressed or deflate TIFF (8 and 16 bit).
	CodecTIFF

	// CodecBMP is Windows bitmap (8 bit only).
	CodecBMP
)

// String returns a string representation of the codec.
func (c Codec) String() string {
	switch c {
	case CodecPNG:
		return "png"
	case CodecTIFF:
		return "tiff"
	case CodecBMP:
		return "bmp"
	default:
		return "unknown"
	}
}

// CodecFromPath picks a codec from the file extension.
func CodecFromPath(path string) (Codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return CodecPNG, nil
	case ".tif", ".tiff":
		return CodecTIFF, nil
	case ".bmp":
		return CodecBMP, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Decode decodes a PNG, TIFF or BMP image, auto-detecting the format.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return img, nil
}

// Encode writes img with the given codec.
func Encode(w io.Writer, img image.Image, c Codec) error {
	var err error
	switch c {
	case CodecPNG:
		err = png.Encode(w, img)
	case CodecTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case CodecBMP:
		err = bmp.Encode(w, img)
	default:
		return ErrUnsupportedFormat
	}
	if err != nil {
		return fmt.Errorf("image: encode %s: %w", c, err)
	}
	return nil
}

// IsGray reports whether img carries a single luminance channel.
func IsGray(img image.Image) bool {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return true
	}
	return img.ColorModel() == color.GrayModel || img.ColorModel() == color.Gray16Model
}

// Is16Bit reports whether img has more than 8 bits per channel.
func Is16Bit(img image.Image) bool {
	switch img.(type) {
	case *image.Gray16, *image.RGBA64, *image.NRGBA64:
		return true
	}
	m := img.ColorModel()
	return m == color.Gray16Model || m == color.RGBA64Model || m == color.NRGBA64Model
}

// SplitPlanes8 splits img into one (gray) or three (R, G, B) 8-bit planes.
// Alpha is dropped; channels are read non-premultiplied.
func SplitPlanes8(img image.Image) []*Plane[uint8] {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if gray, ok := img.(*image.Gray); ok {
		p, _ := NewPlane[uint8](w, h)
		for y := range h {
			copy(p.Row(y), gray.Pix[y*gray.Stride:y*gray.Stride+w])
		}
		return []*Plane[uint8]{p}
	}

	if IsGray(img) {
		p, _ := NewPlane[uint8](w, h)
		for y := range h {
			row := p.Row(y)
			for x := range w {
				row[x] = color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray).Y
			}
		}
		return []*Plane[uint8]{p}
	}

	planes := make([]*Plane[uint8], 3)
	for i := range planes {
		planes[i], _ = NewPlane[uint8](w, h)
	}
	for y := range h {
		r, g, bl := planes[0].Row(y), planes[1].Row(y), planes[2].Row(y)
		for x := range w {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			r[x], g[x], bl[x] = c.R, c.G, c.B
		}
	}
	return planes
}

// SplitPlanes16 splits img into one (gray) or three (R, G, B) 16-bit planes.
func SplitPlanes16(img image.Image) []*Plane[uint16] {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if IsGray(img) {
		p, _ := NewPlane[uint16](w, h)
		for y := range h {
			row := p.Row(y)
			for x := range w {
				row[x] = color.Gray16Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray16).Y
			}
		}
		return []*Plane[uint16]{p}
	}

	planes := make([]*Plane[uint16], 3)
	for i := range planes {
		planes[i], _ = NewPlane[uint16](w, h)
	}
	for y := range h {
		r, g, bl := planes[0].Row(y), planes[1].Row(y), planes[2].Row(y)
		for x := range w {
			c := color.NRGBA64Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA64)
			r[x], g[x], bl[x] = c.R, c.G, c.B
		}
	}
	return planes
}

// JoinPlanes8 builds an *image.Gray from one plane or an opaque
// *image.NRGBA from three planes.
func JoinPlanes8(planes []*Plane[uint8]) (image.Image, error) {
	if err := checkJoin(planes); err != nil {
		return nil, err
	}
	w, h := planes[0].Width, planes[0].Height
	rect := image.Rect(0, 0, w, h)

	if len(planes) == 1 {
		gray := image.NewGray(rect)
		for y := range h {
			copy(gray.Pix[y*gray.Stride:], planes[0].Row(y))
		}
		return gray, nil
	}

	nrgba := image.NewNRGBA(rect)
	for y := range h {
		r, g, bl := planes[0].Row(y), planes[1].Row(y), planes[2].Row(y)
		dst := nrgba.Pix[y*nrgba.Stride:]
		for x := range w {
			dst[x*4] = r[x]
			dst[x*4+1] = g[x]
			dst[x*4+2] = bl[x]
			dst[x*4+3] = 255
		}
	}
	return nrgba, nil
}

// JoinPlanes16 builds an *image.Gray16 from one plane or an opaque
// *image.NRGBA64 from three planes. Samples are written as stored.
func JoinPlanes16(planes []*Plane[uint16]) (image.Image, error) {
	if err := checkJoin(planes); err != nil {
		return nil, err
	}
	w, h := planes[0].Width, planes[0].Height
	rect := image.Rect(0, 0, w, h)

	if len(planes) == 1 {
		gray := image.NewGray16(rect)
		for y := range h {
			row := planes[0].Row(y)
			for x := range w {
				gray.SetGray16(x, y, color.Gray16{Y: row[x]})
			}
		}
		return gray, nil
	}

	nrgba := image.NewNRGBA64(rect)
	for y := range h {
		r, g, bl := planes[0].Row(y), planes[1].Row(y), planes[2].Row(y)
		for x := range w {
			nrgba.SetNRGBA64(x, y, color.NRGBA64{R: r[x], G: g[x], B: bl[x], A: 0xffff})
		}
	}
	return nrgba, nil
}

func checkJoin[T Sample](planes []*Plane[T]) error {
	if len(planes) != 1 && len(planes) != 3 {
		return ErrPlaneCount
	}
	for _, p := range planes[1:] {
		if !SameSize(p, planes[0]) {
			return ErrPlaneCount
		}
	}
	return nil
}

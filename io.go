package atwt

import (
	"fmt"
	stdimage "image"
	"io"
	"os"

	"github.com/gogpu/atwt/internal/image"
)

// Codec identifies a container format for Encode and Save.
type Codec = image.Codec

// Supported codecs.
const (
	CodecPNG  = image.CodecPNG
	CodecTIFF = image.CodecTIFF
	CodecBMP  = image.CodecBMP
)

// CodecFromPath picks a codec from a file extension (.png, .tif, .tiff, .bmp).
func CodecFromPath(path string) (Codec, error) {
	return image.CodecFromPath(path)
}

// DecodeFrame decodes a PNG, TIFF or BMP image into a frame.
//
// Gray images produce one plane, color images three (R, G, B); alpha is
// dropped. Images with 16-bit channels produce Gray16 planes, all others
// Gray8.
func DecodeFrame(r io.Reader) (*Frame, error) {
	img, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	var planes []*Plane
	if image.Is16Bit(img) {
		for _, p := range image.SplitPlanes16(img) {
			planes = append(planes, &Plane{format: Gray16, samples: p})
		}
	} else {
		for _, p := range image.SplitPlanes8(img) {
			planes = append(planes, &Plane{format: Gray8, samples: p})
		}
	}
	return NewFrame(planes...)
}

// LoadFrame reads and decodes an image file.
func LoadFrame(path string) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	frame, err := DecodeFrame(f)
	if err != nil {
		return nil, fmt.Errorf("atwt: load %s: %w", path, err)
	}
	return frame, nil
}

// Encode writes the frame as a gray (one plane) or RGB (three planes)
// image. All planes must have the same size.
//
// Gray8 planes are written with 8-bit channels and 9-16 bit planes with
// 16-bit channels, samples as stored. Float planes are clamped to [0, 1]
// and written as 16-bit. BMP output is always 8-bit.
func (f *Frame) Encode(w io.Writer, c Codec) error {
	img, err := f.image(c)
	if err != nil {
		return err
	}
	return image.Encode(w, img, c)
}

// Save encodes the frame to path, choosing the codec from the extension.
func (f *Frame) Save(path string) error {
	c, err := CodecFromPath(path)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.Encode(out, c); err != nil {
		_ = out.Close()
		return fmt.Errorf("atwt: save %s: %w", path, err)
	}
	return out.Close()
}

func (f *Frame) image(c Codec) (stdimage.Image, error) {
	frame := f
	switch {
	case c == CodecBMP && frame.format != Gray8:
		converted, err := frame.ConvertTo(Gray8)
		if err != nil {
			return nil, err
		}
		frame = converted
	case frame.format.IsFloat() || frame.format.BytesPerSample() > 2:
		converted, err := frame.ConvertTo(Gray16)
		if err != nil {
			return nil, err
		}
		frame = converted
	}

	if frame.format == Gray8 {
		return image.JoinPlanes8(typedPlanes[uint8](frame))
	}
	return image.JoinPlanes16(typedPlanes[uint16](frame))
}

func typedPlanes[T image.Sample](f *Frame) []*image.Plane[T] {
	out := make([]*image.Plane[T], len(f.planes))
	for i, p := range f.planes {
		out[i] = p.samples.(*image.Plane[T])
	}
	return out
}

// EncodePNG writes the frame as PNG.
func (f *Frame) EncodePNG(w io.Writer) error {
	return f.Encode(w, CodecPNG)
}

// EncodeTIFF writes the frame as deflate-compressed TIFF.
func (f *Frame) EncodeTIFF(w io.Writer) error {
	return f.Encode(w, CodecTIFF)
}

// EncodeBMP writes the frame as an 8-bit BMP.
func (f *Frame) EncodeBMP(w io.Writer) error {
	return f.Encode(w, CodecBMP)
}

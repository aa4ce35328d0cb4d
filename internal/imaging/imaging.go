// Package imaging converts between host image tensors and encoded images.
//
// The host hands images over as normalized float tensors
// ([models.ImageBatch]); the Hub wants a PNG file. Going the other way, the
// command-line client loads a PNG or JPEG preview from disk into the same
// tensor layout.
package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"math"
	"os"

	"github.com/MKhiriev/comfy-hf-uploader/models"
)

// previewPattern is the os.CreateTemp pattern for preview files.
const previewPattern = "hf-preview-*.png"

// ErrUnsupportedImage is returned when an input cannot be decoded as PNG or JPEG.
var ErrUnsupportedImage = errors.New("unsupported image")

// ToImage converts item index of batch into an 8-bit image. Each value is
// scaled by 255, clamped to [0, 255] and truncated. One channel produces a
// grayscale image, three an opaque RGB image, four an RGBA image.
func ToImage(batch models.ImageBatch, index int) (image.Image, error) {
	if err := batch.Validate(); err != nil {
		return nil, err
	}
	if index < 0 || index >= batch.Batch {
		return nil, fmt.Errorf("%w: item %d out of range [0, %d)", models.ErrInvalidImageBatch, index, batch.Batch)
	}

	pixels := batch.Item(index)
	rect := image.Rect(0, 0, batch.Width, batch.Height)
	c := batch.Channels

	if c == 1 {
		img := image.NewGray(rect)
		for i, v := range pixels {
			img.Pix[i] = toByte(v)
		}
		return img, nil
	}

	img := image.NewNRGBA(rect)
	for p := 0; p < batch.Width*batch.Height; p++ {
		src := pixels[p*c : p*c+c]
		dst := img.Pix[p*4 : p*4+4]
		dst[0], dst[1], dst[2], dst[3] = toByte(src[0]), toByte(src[1]), toByte(src[2]), 0xff
		if c == 4 {
			dst[3] = toByte(src[3])
		}
	}
	return img, nil
}

// EncodePNG writes item index of batch to w as PNG.
func EncodePNG(w io.Writer, batch models.ImageBatch, index int) error {
	img, err := ToImage(batch, index)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// WritePreviewPNG encodes the first item of batch into a new temporary PNG
// file in dir (the system temp dir when empty) and returns its path. The
// caller owns the file and must remove it. On error no file is left behind.
func WritePreviewPNG(batch models.ImageBatch, dir string) (path string, err error) {
	if err = batch.Validate(); err != nil {
		return "", fmt.Errorf("encode preview: %w", err)
	}

	f, err := os.CreateTemp(dir, previewPattern)
	if err != nil {
		return "", fmt.Errorf("create preview file: %w", err)
	}
	name := f.Name()

	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("close preview file: %w", closeErr)
		}
		if err != nil {
			_ = os.Remove(name)
			path = ""
		}
	}()

	if err = EncodePNG(f, batch, 0); err != nil {
		return "", fmt.Errorf("encode preview: %w", err)
	}
	return name, nil
}

// Decode reads a PNG or JPEG image and returns it as a single-item RGB
// batch with values normalized to [0, 1]. Alpha is dropped.
func Decode(r io.Reader) (models.ImageBatch, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return models.ImageBatch{}, fmt.Errorf("%w: %w", ErrUnsupportedImage, err)
	}
	if format != "png" && format != "jpeg" {
		return models.ImageBatch{}, fmt.Errorf("%w: format %q", ErrUnsupportedImage, format)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	data := make([]float32, 0, w*h*3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			data = append(data, float32(px.R)/255, float32(px.G)/255, float32(px.B)/255)
		}
	}

	return models.ImageBatch{Batch: 1, Height: h, Width: w, Channels: 3, Data: data}, nil
}

// DecodeFile opens path and decodes it with [Decode].
func DecodeFile(path string) (models.ImageBatch, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.ImageBatch{}, fmt.Errorf("open preview: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

func toByte(v float32) uint8 {
	scaled := float64(v) * 255
	switch {
	case math.IsNaN(scaled) || scaled <= 0:
		return 0
	case scaled >= 255:
		return 255
	default:
		return uint8(scaled)
	}
}

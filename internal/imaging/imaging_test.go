package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/comfy-hf-uploader/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToByte(t *testing.T) {
	tests := []struct {
		in   float32
		want uint8
	}{
		{in: 0, want: 0},
		{in: 1, want: 255},
		{in: 0.5, want: 127},
		{in: -0.3, want: 0},
		{in: 1.7, want: 255},
		{in: float32(math.NaN()), want: 0},
		{in: float32(math.Inf(1)), want: 255},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, toByte(tt.in), "value %v", tt.in)
	}
}

func TestToImage_RGBUsesFirstItemAndClamps(t *testing.T) {
	batch := models.ImageBatch{
		Batch: 2, Height: 1, Width: 2, Channels: 3,
		Data: []float32{
			1, 0, 0, 2, -1, 0.5, // item 0
			0, 0, 1, 0, 0, 1, // item 1
		},
	}

	img, err := ToImage(batch, 0)
	require.NoError(t, err)

	nrgba, ok := img.(*image.NRGBA)
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 2, 1), nrgba.Bounds())
	assert.Equal(t, color.NRGBA{R: 255, G: 0, B: 0, A: 255}, nrgba.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 255, G: 0, B: 127, A: 255}, nrgba.NRGBAAt(1, 0))
}

func TestToImage_GrayAndAlpha(t *testing.T) {
	gray, err := ToImage(models.ImageBatch{Batch: 1, Height: 1, Width: 1, Channels: 1, Data: []float32{1}}, 0)
	require.NoError(t, err)
	assert.Equal(t, color.Gray{Y: 255}, gray.(*image.Gray).GrayAt(0, 0))

	rgba, err := ToImage(models.ImageBatch{Batch: 1, Height: 1, Width: 1, Channels: 4, Data: []float32{0, 1, 0, 0.5}}, 0)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0, G: 255, B: 0, A: 127}, rgba.(*image.NRGBA).NRGBAAt(0, 0))
}

func TestToImage_Invalid(t *testing.T) {
	_, err := ToImage(models.ImageBatch{Batch: 1, Height: 2, Width: 2, Channels: 3, Data: []float32{1}}, 0)
	assert.ErrorIs(t, err, models.ErrInvalidImageBatch)

	_, err = ToImage(models.ImageBatch{Batch: 1, Height: 1, Width: 1, Channels: 1, Data: []float32{1}}, 1)
	assert.ErrorIs(t, err, models.ErrInvalidImageBatch)
}

func TestWritePreviewPNG(t *testing.T) {
	dir := t.TempDir()
	batch := models.ImageBatch{Batch: 1, Height: 2, Width: 3, Channels: 3, Data: make([]float32, 18)}

	path, err := WritePreviewPNG(batch, dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.Equal(t, ".png", filepath.Ext(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
}

func TestWritePreviewPNG_InvalidBatchLeavesNoFile(t *testing.T) {
	dir := t.TempDir()

	path, err := WritePreviewPNG(models.ImageBatch{Batch: 1, Height: 1, Width: 1, Channels: 2, Data: []float32{0, 0}}, dir)

	require.Error(t, err)
	assert.Empty(t, path)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWritePreviewPNG_OverflowingShapeLeavesNoFile(t *testing.T) {
	dir := t.TempDir()

	var batch models.ImageBatch
	require.NoError(t, batch.UnmarshalJSON([]byte(`{"shape":[4294967296,4294967296,1,1],"data":[]}`)))

	path, err := WritePreviewPNG(batch, dir)

	require.ErrorIs(t, err, models.ErrInvalidImageBatch)
	assert.Empty(t, path)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDecode_PNGRoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{R: 0, G: 0, B: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	batch, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 2, 3}, batch.Shape())
	assert.Equal(t, []float32{1, 0, 0, 0, 0, 1}, batch.Data)
	assert.NoError(t, batch.Validate())
}

func TestDecode_JPEG(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 4))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, src, nil))

	batch, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 4, 3}, batch.Shape())
}

func TestDecode_Garbage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not an image")))
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestDecodeFile_Missing(t *testing.T) {
	_, err := DecodeFile(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

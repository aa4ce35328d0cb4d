// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidImageBatch is returned by [ImageBatch.Validate] when the declared
// shape does not match the pixel buffer.
var ErrInvalidImageBatch = errors.New("invalid image batch")

// ImageBatch is a host-style image tensor laid out as [Batch, Height, Width,
// Channels] in row-major order. Values are expected in [0, 1]; anything
// outside that range is clamped when the image is encoded.
//
// On the wire it is represented as {"shape": [B, H, W, C], "data": [...]}.
type ImageBatch struct {
	Batch    int
	Height   int
	Width    int
	Channels int
	Data     []float32
}

type imageBatchJSON struct {
	Shape []int     `json:"shape"`
	Data  []float32 `json:"data"`
}

// Validate checks that the shape is positive, the channel count is one that
// can be encoded (1, 3 or 4) and that Data holds exactly B*H*W*C values.
// Item is only safe to call on a batch that passed Validate.
func (b ImageBatch) Validate() error {
	if b.Batch < 1 || b.Height < 1 || b.Width < 1 {
		return fmt.Errorf("%w: non-positive shape %v", ErrInvalidImageBatch, b.Shape())
	}
	switch b.Channels {
	case 1, 3, 4:
	default:
		return fmt.Errorf("%w: unsupported channel count %d", ErrInvalidImageBatch, b.Channels)
	}
	if !b.matchesLen() {
		return fmt.Errorf("%w: shape %v does not match %d values", ErrInvalidImageBatch, b.Shape(), len(b.Data))
	}
	return nil
}

// matchesLen reports whether B*H*W*C == len(Data). The shape is divided out
// of the length instead of multiplied, so huge dimensions cannot overflow.
func (b ImageBatch) matchesLen() bool {
	n := len(b.Data)
	for _, d := range []int{b.Channels, b.Width, b.Height, b.Batch} {
		if n%d != 0 {
			return false
		}
		n /= d
	}
	return n == 1
}

// Shape returns the tensor shape as [B, H, W, C].
func (b ImageBatch) Shape() []int {
	return []int{b.Batch, b.Height, b.Width, b.Channels}
}

// Item returns the pixel values of the i-th image in the batch.
func (b ImageBatch) Item(i int) []float32 {
	size := b.Height * b.Width * b.Channels
	return b.Data[i*size : (i+1)*size]
}

func (b ImageBatch) MarshalJSON() ([]byte, error) {
	return json.Marshal(imageBatchJSON{Shape: b.Shape(), Data: b.Data})
}

func (b *ImageBatch) UnmarshalJSON(data []byte) error {
	var raw imageBatchJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Shape) != 4 {
		return fmt.Errorf("%w: expected 4-dimensional shape, got %v", ErrInvalidImageBatch, raw.Shape)
	}

	*b = ImageBatch{
		Batch:    raw.Shape[0],
		Height:   raw.Shape[1],
		Width:    raw.Shape[2],
		Channels: raw.Shape[3],
		Data:     raw.Data,
	}
	return nil
}

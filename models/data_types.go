package models

import (
	"fmt"
	"strings"
)

// ModelKind defines the on-disk layout of the model being uploaded.
// The value determines which upload path is taken and which library tag
// is written to the model card.
type ModelKind string

const (
	// Checkpoint represents a single-file or directory-based checkpoint
	// (e.g. a .safetensors or .ckpt file).
	Checkpoint ModelKind = "ckpt"

	// Diffusers represents a diffusers-format model directory
	// (model_index.json plus per-component subfolders).
	Diffusers ModelKind = "diffusers"
)

// ModelKinds lists every supported kind in the order the node presents them.
var ModelKinds = []ModelKind{Checkpoint, Diffusers}

// ParseModelKind converts user input into a [ModelKind].
// Matching is case-insensitive; an empty string yields [Checkpoint].
func ParseModelKind(s string) (ModelKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(Checkpoint), "checkpoint":
		return Checkpoint, nil
	case string(Diffusers):
		return Diffusers, nil
	default:
		return "", fmt.Errorf("unknown model kind %q", s)
	}
}

// String implements fmt.Stringer.
func (k ModelKind) String() string {
	return string(k)
}

// LibraryName returns the library tag written into the model card metadata.
func (k ModelKind) LibraryName() string {
	if k == Diffusers {
		return "diffusers"
	}
	return "stable-diffusion"
}

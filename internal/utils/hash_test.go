package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sha256("hello"), a well-known digest.
const helloSHA256 = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"

func TestSHA256Hex(t *testing.T) {
	assert.Equal(t, helloSHA256, SHA256Hex([]byte("hello")))
}

func TestSHA256File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "weights.bin")
	require.NoError(t, os.WriteFile(p, []byte("hello"), 0o600))

	digest, size, err := SHA256File(p)

	require.NoError(t, err)
	assert.Equal(t, helloSHA256, digest)
	assert.Equal(t, int64(5), size)
}

func TestSHA256File_Missing(t *testing.T) {
	_, _, err := SHA256File(filepath.Join(t.TempDir(), "missing"))

	require.Error(t, err)
}

package qrcode_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passgen/pkg/qrcode"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	t.Run("empty secret", func(t *testing.T) {
		t.Parallel()
		out, err := qrcode.Encode("", 128)
		assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
		assert.Nil(t, out)
	})

	t.Run("whitespace is a valid secret", func(t *testing.T) {
		t.Parallel()
		out, err := qrcode.Encode("   ", 128)
		require.NoError(t, err)
		assert.NotEmpty(t, out)
	})

	t.Run("png of requested size", func(t *testing.T) {
		t.Parallel()
		out, err := qrcode.Encode("k7§Qz!x9", 200)
		require.NoError(t, err)
		img, err := png.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, 200, img.Bounds().Dx())
		assert.Equal(t, 200, img.Bounds().Dy())
	})

	t.Run("default size", func(t *testing.T) {
		t.Parallel()
		out, err := qrcode.Encode("secret", 0)
		require.NoError(t, err)
		img, err := png.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, qrcode.DefaultSize, img.Bounds().Dx())
	})

	t.Run("too long", func(t *testing.T) {
		t.Parallel()
		_, err := qrcode.Encode(strings.Repeat("x", 5000), 256)
		assert.ErrorIs(t, err, qrcode.ErrEncode)
	})
}

func TestDataURI(t *testing.T) {
	t.Parallel()
	uri, err := qrcode.DataURI("secret", 64)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(raw))
	assert.NoError(t, err)

	_, err = qrcode.DataURI("", 64)
	assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
}

func TestWriteFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "secret.png")
	require.NoError(t, qrcode.WriteFile(path, "secret", 64))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	err = qrcode.WriteFile(filepath.Join(t.TempDir(), "missing", "x.png"), "secret", 64)
	assert.ErrorIs(t, err, qrcode.ErrWrite)
}

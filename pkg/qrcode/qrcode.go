package qrcode

import (
	"encoding/base64"
	"errors"
	"os"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrEmptyContent is returned for an empty secret.
	ErrEmptyContent = errors.New("content cannot be empty")
	// ErrEncode is returned when the QR code cannot be built, usually
	// because the content exceeds the symbol capacity.
	ErrEncode = errors.New("failed to encode QR code")
	// ErrWrite is returned when the PNG cannot be written to disk.
	ErrWrite = errors.New("failed to write QR code")
)

// DefaultSize is the edge length in pixels used for non-positive sizes.
const DefaultSize = 256

// Encode renders secret as a PNG QR code of size×size pixels with medium
// error recovery. Whitespace is significant and kept.
func Encode(secret string, size int) ([]byte, error) {
	if secret == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = DefaultSize
	}
	png, err := skipqrcode.Encode(secret, skipqrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrEncode, err)
	}
	return png, nil
}

// DataURI renders secret as a base64 PNG data URI for embedding in HTML or
// JSON responses.
func DataURI(secret string, size int) (string, error) {
	png, err := Encode(secret, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// WriteFile renders secret and writes the PNG to path with owner-only
// permissions.
func WriteFile(path, secret string, size int) error {
	png, err := Encode(secret, size)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, png, 0o600); err != nil {
		return errors.Join(ErrWrite, err)
	}
	return nil
}

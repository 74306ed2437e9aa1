// Package qrcode renders generated secrets as QR code images so they can be
// scanned onto another device instead of typed.
//
// It wraps github.com/skip2/go-qrcode with three helpers: Encode returns PNG
// bytes, DataURI returns a base64 data URI for HTTP responses, and WriteFile
// stores the PNG with 0600 permissions for the CLI.
//
//	png, err := qrcode.Encode(res.Value(), 256)
//	if errors.Is(err, qrcode.ErrEmptyContent) {
//		// nothing to render
//	}
package qrcode

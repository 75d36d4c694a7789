// Package vault persists storefront state as opaque strings in a key-value backend.
//
// Values are serialized to JSON, taken as UTF-8 bytes and base64 encoded. The
// explicit byte step keeps multi-byte text (Arabic product names) intact. The
// encoding is obfuscation only, it is not encryption.
package vault

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a key has no stored value.
	ErrNotFound = errors.New("vault: key not found")
	// ErrCorrupt is returned when a stored value cannot be decoded.
	ErrCorrupt = errors.New("vault: corrupt value")
)

// Encode serializes v to JSON and returns its base64 form.
func Encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding value: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Decode reverses Encode into out. Malformed input yields an error wrapping ErrCorrupt.
func Decode(s string, out any) error {
	if s == "" {
		return fmt.Errorf("%w: empty payload", ErrCorrupt)
	}
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return fmt.Errorf("%w: base64: %v", ErrCorrupt, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: json: %v", ErrCorrupt, err)
	}
	return nil
}

// DecodeOr decodes s as a T, returning def on any failure.
func DecodeOr[T any](s string, def T) T {
	var v T
	if err := Decode(s, &v); err != nil {
		return def
	}
	return v
}

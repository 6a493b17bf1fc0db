// Package codec converts between raw bytes and the text encodings the
// exercises use for their inputs and outputs.
package codec

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// Format is a byte encoding.
type Format string

const (
	Raw    Format = "raw"
	Hex    Format = "hex"
	Base64 Format = "base64"
)

// ParseFormat returns the format with the given name, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	switch f {
	case Raw, Hex, Base64:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q", s)
}

func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Decode returns the bytes encoded in data. Whitespace is ignored for hex
// and base64, since input files are usually line-wrapped.
func (f Format) Decode(data []byte) ([]byte, error) {
	switch f {
	case Raw:
		return data, nil
	case Hex:
		data = stripSpace(data)
		out := make([]byte, hex.DecodedLen(len(data)))
		if _, err := hex.Decode(out, data); err != nil {
			return nil, fmt.Errorf("decoding hex: %w", err)
		}
		return out, nil
	case Base64:
		data = stripSpace(data)
		out := make([]byte, base64.StdEncoding.DecodedLen(len(data)))
		n, err := base64.StdEncoding.Decode(out, data)
		if err != nil {
			return nil, fmt.Errorf("decoding base64: %w", err)
		}
		return out[:n], nil
	default:
		return nil, fmt.Errorf("unknown format %q", string(f))
	}
}

// Encode returns data in format f. Hex and base64 output ends in a newline.
func (f Format) Encode(data []byte) ([]byte, error) {
	switch f {
	case Raw:
		return data, nil
	case Hex:
		return []byte(hex.EncodeToString(data) + "\n"), nil
	case Base64:
		return []byte(base64.StdEncoding.EncodeToString(data) + "\n"), nil
	default:
		return nil, fmt.Errorf("unknown format %q", string(f))
	}
}

func stripSpace(data []byte) []byte {
	return bytes.Join(bytes.Fields(data), nil)
}

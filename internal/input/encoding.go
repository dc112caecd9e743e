package input

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Supported encoding names.
const (
	EncodingLatin1  = "iso-8859-1"
	EncodingWin1252 = "windows-1252"
	EncodingUTF8    = "utf-8"
)

var encodingAliases = map[string]string{
	"iso-8859-1":   EncodingLatin1,
	"iso8859-1":    EncodingLatin1,
	"latin1":       EncodingLatin1,
	"latin-1":      EncodingLatin1,
	"windows-1252": EncodingWin1252,
	"cp1252":       EncodingWin1252,
	"utf-8":        EncodingUTF8,
	"utf8":         EncodingUTF8,
}

// NormalizeEncoding maps an encoding name or alias to its canonical name.
func NormalizeEncoding(name string) (string, error) {
	canonical, ok := encodingAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
	}
	return canonical, nil
}

// lookupEncoding returns the decoder for a canonical encoding name.
func lookupEncoding(name string) (encoding.Encoding, error) {
	canonical, err := NormalizeEncoding(name)
	if err != nil {
		return nil, err
	}
	switch canonical {
	case EncodingLatin1:
		return charmap.ISO8859_1, nil
	case EncodingWin1252:
		return charmap.Windows1252, nil
	default:
		return unicode.UTF8BOM, nil
	}
}

// decodeText converts raw file bytes to UTF-8.
func decodeText(data []byte, name string) ([]byte, error) {
	enc, err := lookupEncoding(name)
	if err != nil {
		return nil, err
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return decoded, nil
}

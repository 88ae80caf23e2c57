// Package textdec decodes file contents of uncertain or mixed encoding.
//
// Decoding walks a fixed fallback chain and always produces text: strict
// UTF-8, BOM-marked UTF-8/UTF-16/UTF-32, Windows-1252, Latin-1, and finally
// a lossless raw pass-through. Only filesystem errors are reported to the
// caller; malformed bytes never are.
package textdec

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// Encoding labels reported in Result.Encoding.
const (
	EncodingUTF8         = "utf-8"
	EncodingUTF8BOM      = "utf-8-bom"
	EncodingUTF16LE      = "utf-16le"
	EncodingUTF16BE      = "utf-16be"
	EncodingUTF32LE      = "utf-32le"
	EncodingUTF32BE      = "utf-32be"
	EncodingCP1252       = "cp1252"
	EncodingLatin1       = "latin-1"
	EncodingUTF8Lossless = "utf-8-lossless"
)

// Result holds decoded text together with the label of the encoding tier
// that produced it.
type Result struct {
	Text     string
	Encoding string
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF32LE = []byte{0xFF, 0xFE, 0x00, 0x00}
	bomUTF32BE = []byte{0x00, 0x00, 0xFE, 0xFF}
)

// Decode converts raw bytes to text. It never fails: every byte sequence
// lands in one of the tiers, the last of which keeps unmappable bytes as-is.
func Decode(data []byte) Result {
	if bytes.HasPrefix(data, bomUTF8) {
		if rest := data[len(bomUTF8):]; utf8.Valid(rest) {
			return Result{Text: string(rest), Encoding: EncodingUTF8BOM}
		}
	} else if utf8.Valid(data) {
		return Result{Text: string(data), Encoding: EncodingUTF8}
	}

	// UTF-32 BOMs are checked before UTF-16 because the UTF-32LE mark starts
	// with the UTF-16LE mark. The x/text decoders substitute U+FFFD rather
	// than fail on malformed input, so each tier is gated on a strict
	// validity check; invalid payloads fall through to the byte encodings.
	switch {
	case bytes.HasPrefix(data, bomUTF32LE) && utf32Valid(data, littleEndian):
		if text, ok := decodeWith(utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM), data); ok {
			return Result{Text: text, Encoding: EncodingUTF32LE}
		}
	case bytes.HasPrefix(data, bomUTF32BE) && utf32Valid(data, bigEndian):
		if text, ok := decodeWith(utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM), data); ok {
			return Result{Text: text, Encoding: EncodingUTF32BE}
		}
	case bytes.HasPrefix(data, bomUTF16LE) && utf16Valid(data, littleEndian):
		if text, ok := decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), data); ok {
			return Result{Text: text, Encoding: EncodingUTF16LE}
		}
	case bytes.HasPrefix(data, bomUTF16BE) && utf16Valid(data, bigEndian):
		if text, ok := decodeWith(unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM), data); ok {
			return Result{Text: text, Encoding: EncodingUTF16BE}
		}
	}

	if cp1252Clean(data) {
		if text, ok := decodeWith(charmap.Windows1252, data); ok {
			return Result{Text: text, Encoding: EncodingCP1252}
		}
	}

	if text, ok := decodeWith(charmap.ISO8859_1, data); ok {
		return Result{Text: text, Encoding: EncodingLatin1}
	}

	// Unreachable in practice since Latin-1 maps every byte, but the chain
	// must terminate without data loss either way. Go strings hold arbitrary
	// bytes, so the raw form round-trips.
	return Result{Text: string(data), Encoding: EncodingUTF8Lossless}
}

// ReadFile reads and decodes a file. Open and read errors are returned
// untouched so callers can distinguish filesystem failures from content
// problems; content problems do not exist past this point.
func ReadFile(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Decode(data), nil
}

func decodeWith(enc encoding.Encoding, data []byte) (string, bool) {
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	return string(out), true
}

type byteOrder bool

const (
	littleEndian byteOrder = true
	bigEndian    byteOrder = false
)

func (o byteOrder) uint16At(data []byte, i int) uint16 {
	if o == littleEndian {
		return uint16(data[i]) | uint16(data[i+1])<<8
	}
	return uint16(data[i])<<8 | uint16(data[i+1])
}

func (o byteOrder) uint32At(data []byte, i int) uint32 {
	if o == littleEndian {
		return uint32(data[i]) | uint32(data[i+1])<<8 | uint32(data[i+2])<<16 | uint32(data[i+3])<<24
	}
	return uint32(data[i])<<24 | uint32(data[i+1])<<16 | uint32(data[i+2])<<8 | uint32(data[i+3])
}

// utf16Valid reports whether data is well-formed UTF-16: an even byte count
// and correctly paired surrogates.
func utf16Valid(data []byte, order byteOrder) bool {
	if len(data)%2 != 0 {
		return false
	}
	for i := 0; i < len(data); i += 2 {
		u := order.uint16At(data, i)
		switch {
		case u >= 0xD800 && u < 0xDC00:
			i += 2
			if i >= len(data) {
				return false
			}
			if v := order.uint16At(data, i); v < 0xDC00 || v >= 0xE000 {
				return false
			}
		case u >= 0xDC00 && u < 0xE000:
			return false
		}
	}
	return true
}

// utf32Valid reports whether data is well-formed UTF-32: a byte count
// divisible by four and every unit a scalar value (in range, no surrogates).
func utf32Valid(data []byte, order byteOrder) bool {
	if len(data)%4 != 0 {
		return false
	}
	for i := 0; i < len(data); i += 4 {
		u := order.uint32At(data, i)
		if u > 0x10FFFF || (u >= 0xD800 && u < 0xE000) {
			return false
		}
	}
	return true
}

// cp1252Clean reports whether every byte has a Windows-1252 assignment.
// The code page leaves five bytes undefined; inputs carrying one of them
// fall through to Latin-1, which maps all 256 byte values.
func cp1252Clean(data []byte) bool {
	for _, b := range data {
		switch b {
		case 0x81, 0x8D, 0x8F, 0x90, 0x9D:
			return false
		}
	}
	return true
}

package textdec

import (
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"
)

func TestDecodeUTF8(t *testing.T) {
	res := Decode([]byte("héllo wörld\n"))
	if res.Encoding != EncodingUTF8 {
		t.Fatalf("encoding = %q, want %q", res.Encoding, EncodingUTF8)
	}
	if res.Text != "héllo wörld\n" {
		t.Fatalf("text = %q", res.Text)
	}
}

func TestDecodeUTF8BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("hello")...)
	res := Decode(data)
	if res.Encoding != EncodingUTF8BOM {
		t.Fatalf("encoding = %q, want %q", res.Encoding, EncodingUTF8BOM)
	}
	if res.Text != "hello" {
		t.Fatalf("text = %q, want BOM stripped", res.Text)
	}
}

func TestDecodeUTF16LE(t *testing.T) {
	// BOM + "hi" little-endian.
	data := []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00}
	res := Decode(data)
	if res.Encoding != EncodingUTF16LE {
		t.Fatalf("encoding = %q, want %q", res.Encoding, EncodingUTF16LE)
	}
	if res.Text != "hi" {
		t.Fatalf("text = %q, want %q", res.Text, "hi")
	}
}

func TestDecodeUTF16BE(t *testing.T) {
	data := []byte{0xFE, 0xFF, 0x00, 'h', 0x00, 'i'}
	res := Decode(data)
	if res.Encoding != EncodingUTF16BE {
		t.Fatalf("encoding = %q, want %q", res.Encoding, EncodingUTF16BE)
	}
	if res.Text != "hi" {
		t.Fatalf("text = %q, want %q", res.Text, "hi")
	}
}

func TestDecodeUTF32LE(t *testing.T) {
	data := []byte{0xFF, 0xFE, 0x00, 0x00, 'h', 0x00, 0x00, 0x00, 'i', 0x00, 0x00, 0x00}
	res := Decode(data)
	if res.Encoding != EncodingUTF32LE {
		t.Fatalf("encoding = %q, want %q", res.Encoding, EncodingUTF32LE)
	}
	if res.Text != "hi" {
		t.Fatalf("text = %q, want %q", res.Text, "hi")
	}
}

func TestDecodeUTF16SurrogatePair(t *testing.T) {
	// BOM + U+1F600 as a surrogate pair.
	data := []byte{0xFF, 0xFE, 0x3D, 0xD8, 0x00, 0xDE}
	res := Decode(data)
	if res.Encoding != EncodingUTF16LE {
		t.Fatalf("encoding = %q, want %q", res.Encoding, EncodingUTF16LE)
	}
	if res.Text != "\U0001F600" {
		t.Fatalf("text = %q", res.Text)
	}
}

func TestDecodeLatin1TextStartingWithUTF16Mark(t *testing.T) {
	// "ÿþh" in Latin-1 begins with the UTF-16LE BOM bytes but has an odd
	// payload, so the BOM tier must not claim it.
	data := []byte{0xFF, 0xFE, 0x68}
	res := Decode(data)
	if res.Encoding == EncodingUTF16LE {
		t.Fatalf("UTF-16 tier claimed malformed input: %q", res.Text)
	}
	if got := utf8.RuneCountInString(res.Text); got != len(data) {
		t.Fatalf("code point count = %d, want %d", got, len(data))
	}
	if res.Text != "ÿþh" {
		t.Fatalf("text = %q, want %q", res.Text, "ÿþh")
	}
}

func TestDecodeTruncatedUTF16FallsThrough(t *testing.T) {
	// BOM followed by a lone high surrogate: well-sized but ill-formed.
	data := []byte{0xFF, 0xFE, 0x3D, 0xD8}
	res := Decode(data)
	if res.Encoding == EncodingUTF16LE {
		t.Fatalf("UTF-16 tier claimed lone surrogate: %q", res.Text)
	}
	if got := utf8.RuneCountInString(res.Text); got != len(data) {
		t.Fatalf("code point count = %d, want %d", got, len(data))
	}
}

func TestDecodeMalformedUTF32FallsThrough(t *testing.T) {
	// UTF-32LE BOM followed by an out-of-range unit that is also invalid
	// UTF-16 (two unpaired high surrogates).
	data := []byte{0xFF, 0xFE, 0x00, 0x00, 0x3D, 0xD8, 0x3D, 0xD8}
	res := Decode(data)
	if res.Encoding == EncodingUTF32LE || res.Encoding == EncodingUTF16LE {
		t.Fatalf("BOM tier claimed malformed input: %q (%s)", res.Text, res.Encoding)
	}
	if got := utf8.RuneCountInString(res.Text); got != len(data) {
		t.Fatalf("code point count = %d, want %d", got, len(data))
	}
}

func TestDecodeCP1252(t *testing.T) {
	// 0x93/0x94 are curly double quotes in Windows-1252 and invalid UTF-8 here.
	data := []byte{0x93, 'o', 'k', 0x94}
	res := Decode(data)
	if res.Encoding != EncodingCP1252 {
		t.Fatalf("encoding = %q, want %q", res.Encoding, EncodingCP1252)
	}
	if res.Text != "“ok”" {
		t.Fatalf("text = %q", res.Text)
	}
}

func TestDecodeLatin1PreservesCodePointCount(t *testing.T) {
	// 0x90 has no Windows-1252 assignment, forcing the Latin-1 tier, which
	// maps every byte to exactly one code point.
	data := []byte{'a', 0x90, 0xE9, 'z'}
	res := Decode(data)
	if res.Encoding != EncodingLatin1 {
		t.Fatalf("encoding = %q, want %q", res.Encoding, EncodingLatin1)
	}
	if got := utf8.RuneCountInString(res.Text); got != len(data) {
		t.Fatalf("code point count = %d, want %d", got, len(data))
	}
	if res.Text != "aéz" {
		t.Fatalf("text = %q", res.Text)
	}
}

func TestDecodeNeverFails(t *testing.T) {
	inputs := [][]byte{
		nil,
		{},
		{0xFF},
		{0xFF, 0xFE},
		{0xFE, 0xFF},
		{0xFF, 0xFE, 0x00, 0x00},
		{0x00, 0x00, 0xFE, 0xFF},
		{0xC0, 0xAF},
		{0xED, 0xA0, 0x80},
		{0x81, 0x8D, 0x8F, 0x90, 0x9D},
	}
	for _, data := range inputs {
		res := Decode(data)
		if res.Encoding == "" {
			t.Fatalf("no encoding label for % x", data)
		}
	}
}

func TestDecodeEmpty(t *testing.T) {
	res := Decode(nil)
	if res.Text != "" || res.Encoding != EncodingUTF8 {
		t.Fatalf("got (%q, %q)", res.Text, res.Encoding)
	}
}

func TestReadFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.txt")
	content := "line one\nline twö\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if res.Text != content {
		t.Fatalf("text = %q, want %q", res.Text, content)
	}
	if res.Encoding != EncodingUTF8 {
		t.Fatalf("encoding = %q, want %q", res.Encoding, EncodingUTF8)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

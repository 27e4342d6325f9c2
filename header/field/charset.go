package field

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Decoder represents the character decoding function used for transforming
// header text supplied in arbitrary text encodings into native unicode.
//
// The decoder should only permit a valid transformation from the source format
// into unicode. Any byte present in the input that is invalid for the source
// character encoding should be replaced with the unicode.ReplacementChar.
//
// If the source charset is not supported, the string should be empty and an
// error should be returned.
type Decoder func(charset string, b []byte) (string, error)

// CharsetDecoder is the Decoder used for encoded words and for RFC 2231
// parameter values when transcoding is requested. You may replace it with a
// custom decoder or import the encoding package to support a broad range of
// encodings:
//
//	import _ "github.com/zostay/go-mimeparam/header/encoding"
var CharsetDecoder Decoder = DefaultCharsetDecoder

// DefaultCharsetDecoder is the default decoder. It is able to handle us-ascii,
// iso-8859-1 (a.k.a. latin1), and utf-8 only. Anything else will result in an
// error.
//
// When us-ascii is input, any 8-bit character (i.e., bytes greater than 0x7f)
// will be translated into unicode.ReplacementChar.
//
// When utf-8 is input, the bytes will be read in and transformed into runes
// such that only valid unicode bytes will be permitted in. Errors will be
// brought in as unicode.ReplacementChar.
func DefaultCharsetDecoder(charset string, b []byte) (string, error) {
	switch strings.ToLower(charset) {
	case "us-ascii", "ascii", "":
		var s strings.Builder
		for _, c := range b {
			if c > unicode.MaxASCII {
				s.WriteRune(unicode.ReplacementChar)
			} else {
				s.WriteByte(c)
			}
		}
		return s.String(), nil
	case "iso-8859-1", "latin1":
		var s strings.Builder
		for _, c := range b {
			s.WriteRune(rune(c))
		}
		return s.String(), nil
	case "utf-8", "utf8":
		var s strings.Builder
		for len(b) > 0 {
			r, size := utf8.DecodeRune(b)
			s.WriteRune(r)
			b = b[size:]
		}
		return s.String(), nil
	default:
		return "", fmt.Errorf("unsupported byte encoding %q", charset)
	}
}

// CharsetDecoderToCharsetReader transforms a CharsetDecoder defined here into the
// interface used by mime.WordDecoder.
func CharsetDecoderToCharsetReader(decode Decoder) func(string, io.Reader) (io.Reader, error) {
	return func(charset string, r io.Reader) (io.Reader, error) {
		bs, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}

		s, err := decode(charset, bs)
		if err != nil {
			return nil, err
		}

		return strings.NewReader(s), nil
	}
}

package param

import (
	"strings"

	"github.com/zostay/go-mimeparam/header/field"
)

func isQuoted(v string) bool {
	return len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"'
}

// unquote strips a matching pair of surrounding double quotes and resolves
// backslash escapes. Values that are not quoted are returned unchanged.
func unquote(v string) string {
	if !isQuoted(v) {
		return v
	}

	v = v[1 : len(v)-1]
	if strings.IndexByte(v, '\\') < 0 {
		return v
	}

	var buf strings.Builder
	buf.Grow(len(v))
	for i := 0; i < len(v); i++ {
		if v[i] == '\\' && i+1 < len(v) {
			i++
		}
		buf.WriteByte(v[i])
	}
	return buf.String()
}

// decodeQuoted decodes a plain value or a non-extended continuation section.
// Encoded words that fail to decode are kept as they are.
func decodeQuoted(raw string) string {
	return field.DecodeTolerant(unquote(raw))
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// decodePercent turns every %XX into the byte it names. A "%" that is not
// followed by two hex digits is kept as is and "+" is never a space.
func decodePercent(v string) []byte {
	b := make([]byte, 0, len(v))
	for i := 0; i < len(v); i++ {
		if v[i] == '%' && i+2 < len(v) {
			hi, okh := unhex(v[i+1])
			lo, okl := unhex(v[i+2])
			if okh && okl {
				b = append(b, hi<<4|lo)
				i += 2
				continue
			}
		}
		b = append(b, v[i])
	}
	return b
}

// splitExtended breaks an extended value into its charset, language, and still
// percent-encoded text. The value may be quoted, which RFC 2231 does not allow
// but which is seen in the wild.
func splitExtended(p RawParameter) (charset, lang, text string, err error) {
	parts := strings.SplitN(unquote(p.Value), "'", 3)
	if len(parts) < 3 {
		return "", "", "", &MalformedExtendedValueError{Name: p.FullName, Value: p.Value}
	}

	return parts[0], parts[1], parts[2], nil
}

// decodeExtended percent-decodes text and transcodes the result.
func (pr *parser) decodeExtended(charset, text string) string {
	return pr.transcodeBytes(charset, decodePercent(text))
}

// transcodeBytes returns b as a string unchanged unless transcoding was
// requested and a charset is known, in which case field.CharsetDecoder converts
// it. A charset the decoder cannot handle leaves the bytes unconverted.
func (pr *parser) transcodeBytes(charset string, b []byte) string {
	if !pr.transcode || charset == "" {
		return string(b)
	}

	s, err := field.CharsetDecoder(charset, b)
	if err != nil {
		return string(b)
	}

	return s
}

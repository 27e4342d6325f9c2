package field

import (
	"mime"
	"strings"
)

func wordDecoder() *mime.WordDecoder {
	return &mime.WordDecoder{
		CharsetReader: CharsetDecoderToCharsetReader(CharsetDecoder),
	}
}

// Decode transforms a single header field body and looks for MIME word encoded
// field values. When they are found, these are decoded into native unicode. Any
// encoded word that cannot be decoded fails the whole body.
func Decode(body string) (string, error) {
	if strings.Contains(body, "=?") {
		return wordDecoder().DecodeHeader(body)
	}

	return body, nil
}

// DecodeTolerant works like Decode, but never fails. Every encoded word is
// decoded on its own and any word that is malformed or names a charset that
// CharsetDecoder does not know is left in the output exactly as it appeared in
// the input.
//
// Linear whitespace separating two encoded words that both decoded is dropped,
// as RFC 2047 requires.
func DecodeTolerant(body string) string {
	if !strings.Contains(body, "=?") {
		return body
	}

	dec := wordDecoder()

	var buf strings.Builder
	afterWord := false
	rest := body
	for {
		start := strings.Index(rest, "=?")
		if start < 0 {
			break
		}

		end := encodedWordEnd(rest[start:])
		if end < 0 {
			// not a word, keep the "=?" as text and look further
			buf.WriteString(rest[:start+2])
			rest = rest[start+2:]
			afterWord = false
			continue
		}

		text, word := rest[:start], rest[start:start+end]

		decoded, err := dec.Decode(word)
		if err != nil {
			// the span may run on into a later word, so only the "=?" is
			// given up on
			buf.WriteString(rest[:start+2])
			rest = rest[start+2:]
			afterWord = false
			continue
		}
		rest = rest[start+end:]

		if !afterWord || strings.Trim(text, " \t\r\n") != "" {
			buf.WriteString(text)
		}
		buf.WriteString(decoded)
		afterWord = true
	}

	buf.WriteString(rest)
	return buf.String()
}

// encodedWordEnd reports the length of the encoded word s starts with, which
// has the shape =?charset?e?text?=, or -1 if s does not start with one.
func encodedWordEnd(s string) int {
	if !strings.HasPrefix(s, "=?") {
		return -1
	}

	cs := strings.IndexByte(s[2:], '?')
	if cs <= 0 || strings.ContainsAny(s[2:2+cs], " \t\r\n") {
		return -1
	}
	cs += 2

	// encoding is a single letter
	if len(s) < cs+3 || s[cs+2] != '?' {
		return -1
	}

	te := strings.Index(s[cs+3:], "?=")
	if te < 0 {
		return -1
	}

	return cs + 3 + te + 2
}

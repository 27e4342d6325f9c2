package param

import (
	"fmt"
	"sort"
	"strings"
)

// attrChars are the characters RFC 2231 allows unescaped in an extended value.
const attrChars = "!#$&+-.0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ^_`abcdefghijklmnopqrstuvwxyz|~"

const hexDigits = "0123456789ABCDEF"

type valueForm int

const (
	formToken valueForm = iota
	formQuoted
	formExtended
)

// classify picks the simplest form that parses back to v.
func classify(v string) valueForm {
	if strings.Contains(v, "=?") {
		// would be mistaken for an encoded word
		return formExtended
	}
	if isPrimaryToken(v) {
		return formToken
	}
	for i := 0; i < len(v); i++ {
		if v[i] < 0x20 || v[i] > 0x7e {
			return formExtended
		}
	}
	return formQuoted
}

func writeQuoted(b *strings.Builder, v string) {
	b.WriteByte('"')
	for i := 0; i < len(v); i++ {
		if v[i] == '"' || v[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(v[i])
	}
	b.WriteByte('"')
}

func writeExtended(b *strings.Builder, v string) {
	b.WriteString("utf-8''")
	for i := 0; i < len(v); i++ {
		c := v[i]
		if strings.IndexByte(attrChars, c) >= 0 {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0x0f])
	}
}

// Format serializes parameters as a parameters string, sorted by name and
// joined with "; ". It is the inverse of ParseParameters for names made of
// token characters:
//
//   - a value made only of token characters is written bare,
//   - other printable US-ASCII values are written as quoted-strings, and
//   - anything else, including values that look like encoded words, is written
//     as an RFC 2231 extended value in utf-8.
//
// Long values are not broken into continuations.
func Format(ps map[string]string) string {
	names := make([]string, 0, len(ps))
	for name := range ps {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for n, name := range names {
		if n > 0 {
			b.WriteString("; ")
		}

		v := ps[name]
		switch classify(v) {
		case formToken:
			fmt.Fprintf(&b, "%s=%s", name, v)
		case formQuoted:
			b.WriteString(name)
			b.WriteByte('=')
			writeQuoted(&b, v)
		case formExtended:
			b.WriteString(name)
			b.WriteString("*=")
			writeExtended(&b, v)
		}
	}

	return b.String()
}

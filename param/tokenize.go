package param

import (
	"strconv"
	"strings"
)

// whitespace matched between the parts of a name=value unit
const whitespace = " \t\r\n\v\f"

// tokenChars are the characters permitted in a parameter name: the RFC 2045
// token characters less "*", "'" and "%", which RFC 2231 reserves, and less
// "`", "{" and "}".
const tokenChars = "!#$&+-.0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ^_abcdefghijklmnopqrstuvwxyz|~"

var isTokenChar [256]bool

func init() {
	for i := 0; i < len(tokenChars); i++ {
		isTokenChar[tokenChars[i]] = true
	}
}

func isSpace(c byte) bool {
	return strings.IndexByte(whitespace, c) >= 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// RawParameter is a single name=value unit of a parameters string before any
// decoding has taken place.
type RawParameter struct {
	// FullName is the name as written, including any *section and trailing *
	// markers.
	FullName string

	// BaseName is the name with the markers stripped.
	BaseName string

	// Extended is true when the name ends with "*", which means the value is
	// percent-encoded and, unless it is a later continuation section, tagged
	// with charset'language'.
	Extended bool

	// HasSection is true when the name carries a *N continuation marker, in
	// which case Section holds N.
	HasSection bool
	Section    int

	// Value is the raw value, still quoted if it was quoted.
	Value string

	// Offset is the byte offset of the unit within the trimmed input.
	Offset int
}

// tokenizer walks a trimmed parameters string one unit at a time.
type tokenizer struct {
	s   string
	pos int
}

func (t *tokenizer) fail(reason string) error {
	return &MalformedInputError{Input: t.s, Offset: t.pos, Reason: reason}
}

func (t *tokenizer) skipSpace() {
	for t.pos < len(t.s) && isSpace(t.s[t.pos]) {
		t.pos++
	}
}

func (t *tokenizer) peek() (byte, bool) {
	if t.pos < len(t.s) {
		return t.s[t.pos], true
	}
	return 0, false
}

// name reads baseName ("*" digits)? "*"?.
func (t *tokenizer) name(p *RawParameter) error {
	start := t.pos
	for t.pos < len(t.s) && isTokenChar[t.s[t.pos]] {
		t.pos++
	}
	if t.pos == start {
		return t.fail("expected parameter name")
	}
	p.BaseName = t.s[start:t.pos]

	if c, ok := t.peek(); ok && c == '*' && t.pos+1 < len(t.s) && isDigit(t.s[t.pos+1]) {
		t.pos++
		ds := t.pos
		for t.pos < len(t.s) && isDigit(t.s[t.pos]) {
			t.pos++
		}

		n, err := strconv.Atoi(t.s[ds:t.pos])
		if err != nil {
			t.pos = ds
			return t.fail("section number out of range")
		}

		p.HasSection = true
		p.Section = n
	}

	if c, ok := t.peek(); ok && c == '*' {
		t.pos++
		p.Extended = true
	}

	p.FullName = t.s[start:t.pos]
	return nil
}

// quoted reads a quoted-string, the opening quote being at the current
// position.
func (t *tokenizer) quoted() error {
	start := t.pos
	t.pos++
	for t.pos < len(t.s) {
		switch t.s[t.pos] {
		case '"':
			t.pos++
			return nil
		case '\\':
			t.pos += 2
		default:
			t.pos++
		}
	}

	t.pos = start
	return t.fail("unterminated quoted-string")
}

// value reads any mix of quoted-strings and unquoted runs up to the next ";"
// or the end of input.
func (t *tokenizer) value(p *RawParameter) error {
	start := t.pos
	for t.pos < len(t.s) && t.s[t.pos] != ';' {
		if t.s[t.pos] == '"' {
			if err := t.quoted(); err != nil {
				return err
			}
			continue
		}
		t.pos++
	}

	if t.pos == start {
		return t.fail("expected parameter value")
	}

	p.Value = strings.TrimRight(t.s[start:t.pos], whitespace)
	return nil
}

func (t *tokenizer) next() (RawParameter, error) {
	var p RawParameter

	t.skipSpace()
	p.Offset = t.pos
	if err := t.name(&p); err != nil {
		return p, err
	}

	t.skipSpace()
	if c, ok := t.peek(); !ok || c != '=' {
		return p, t.fail("expected \"=\"")
	}
	t.pos++
	t.skipSpace()

	if err := t.value(&p); err != nil {
		return p, err
	}

	// value stops only at ";" or the end
	if t.pos < len(t.s) {
		t.pos++
	}

	return p, nil
}

// Tokenize breaks a parameters string, such as the part of a Content-type
// field body following the media type, into its name=value units in the order
// they appear. Nothing is decoded.
//
// The whole string must be consumed: any text that does not fit the grammar is
// reported as a *MalformedInputError. A section number too large to fit in an
// int is also reported as a *MalformedInputError. An empty or blank string
// returns no units and no error.
func Tokenize(s string) ([]RawParameter, error) {
	t := &tokenizer{s: strings.Trim(s, whitespace)}

	var ps []RawParameter
	for t.pos < len(t.s) {
		p, err := t.next()
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}

	return ps, nil
}

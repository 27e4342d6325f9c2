package param

import (
	"sort"
	"strings"
)

// continuation holds the sections of one continued parameter by number.
type continuation map[int]RawParameter

// Assemble decodes the units returned by Tokenize into a map from parameter
// name to value.
//
// Units without a section number are decoded right away. A plain unit is
// unquoted and has its encoded words decoded. An extended unit must have the
// form charset'language'text and has its text percent-decoded. When the same
// name is given more than once, the last one wins.
//
// Units with a section number are gathered by name and joined in section order
// starting at 0. Extended sections are percent-decoded using the charset given
// in section 0 and other sections are decoded like plain units. A plain or
// extended value for the same name always replaces the whole continuation. A
// continuation without section 0 is dropped and one with a gap in its numbering
// ends at the gap, unless WithStrictContinuations is given.
func Assemble(ps []RawParameter, opts ...ParseOption) (map[string]string, error) {
	pr := newParser(opts)

	params := make(map[string]string, len(ps))
	conts := map[string]continuation{}
	for _, p := range ps {
		switch {
		case p.HasSection:
			c, ok := conts[p.BaseName]
			if !ok {
				c = continuation{}
				conts[p.BaseName] = c
			}
			c[p.Section] = p

		case p.Extended:
			charset, _, text, err := splitExtended(p)
			if err != nil {
				return nil, err
			}
			params[p.BaseName] = pr.decodeExtended(charset, text)

		default:
			params[p.BaseName] = decodeQuoted(p.Value)
		}
	}

	// sorted so that strict mode reports errors deterministically
	names := make([]string, 0, len(conts))
	for name := range conts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, done := params[name]; done {
			continue
		}

		v, ok, err := pr.join(name, conts[name])
		if err != nil {
			return nil, err
		}
		if ok {
			params[name] = v
		}
	}

	return params, nil
}

// join concatenates the sections of a continuation. It returns false when there
// is no section 0 and no error is called for.
func (pr *parser) join(name string, c continuation) (string, bool, error) {
	first, ok := c[0]
	if !ok {
		if pr.strict {
			return "", false, &ContinuationError{Name: name, Missing: 0}
		}
		return "", false, nil
	}

	var (
		charset string
		buf     strings.Builder
		pending []byte
	)

	// runs of extended sections are transcoded together so that a character
	// split across sections survives
	flush := func() {
		if len(pending) > 0 {
			buf.WriteString(pr.transcodeBytes(charset, pending))
			pending = pending[:0]
		}
	}

	if first.Extended {
		cs, _, text, err := splitExtended(first)
		if err != nil {
			return "", false, err
		}
		charset = cs
		pending = append(pending, decodePercent(text)...)
	} else {
		buf.WriteString(decodeQuoted(first.Value))
	}

	for n := 1; n < len(c); n++ {
		p, ok := c[n]
		if !ok {
			if pr.strict {
				return "", false, &ContinuationError{Name: name, Missing: n}
			}
			break
		}

		if p.Extended {
			pending = append(pending, decodePercent(unquote(p.Value))...)
		} else {
			flush()
			buf.WriteString(decodeQuoted(p.Value))
		}
	}
	flush()

	return buf.String(), true, nil
}

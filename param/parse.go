package param

import (
	"fmt"
	"strings"
)

// ParseParameters decodes a parameters string, such as everything following
// "text/plain;" in a Content-type field body, into a map from parameter name to
// value. It is Tokenize followed by Assemble.
//
//	ps, err := param.ParseParameters(`charset=utf-8; name*0="my "; name*1=file.txt`)
//	// ps["charset"] == "utf-8", ps["name"] == "my file.txt"
//
// Names are returned as given, without case folding. The returned error is a
// *MalformedInputError, a *MalformedExtendedValueError, or, with
// WithStrictContinuations, a *ContinuationError.
func ParseParameters(s string, opts ...ParseOption) (map[string]string, error) {
	ps, err := Tokenize(s)
	if err != nil {
		return nil, err
	}

	return Assemble(ps, opts...)
}

// primaryChars are all of the RFC 2045 token characters, which is what a
// primary value is made of.
const primaryChars = tokenChars + "*'%`{}"

func isPrimaryToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(primaryChars, s[i]) < 0 {
			return false
		}
	}
	return true
}

// splitPrimary separates the primary value from the parameters string,
// lower-casing and checking the primary value.
func splitPrimary(v string) (string, string, error) {
	primary, rest, _ := strings.Cut(v, ";")
	primary = strings.ToLower(strings.Trim(primary, whitespace))

	typ, sub, hasSlash := strings.Cut(primary, "/")
	if !isPrimaryToken(typ) || (hasSlash && !isPrimaryToken(sub)) {
		return "", "", fmt.Errorf("%w: %q", ErrBadPrimaryValue, primary)
	}

	return primary, rest, nil
}

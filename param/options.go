package param

type parser struct {
	transcode bool
	strict    bool
}

func (pr *parser) clone() *parser {
	p := *pr
	return &p
}

var defaultParser = &parser{
	transcode: false,
	strict:    false,
}

// ParseOption refers to options that may be passed to ParseParameters, Parse,
// and Assemble to modify how parameters are decoded.
type ParseOption func(pr *parser)

// WithCharsetTranscoding is a ParseOption that converts the bytes of RFC 2231
// extended values from the charset they declare into native unicode using
// field.CharsetDecoder. By default, the percent-decoded bytes are returned
// as-is and the declared charset is ignored. If the charset is not supported
// by the decoder, the bytes are returned as-is even with this option.
func WithCharsetTranscoding() ParseOption {
	return func(pr *parser) { pr.transcode = true }
}

// WithStrictContinuations is a ParseOption that makes a continuation with no
// section 0 or with a gap in its section numbers fail with a
// *ContinuationError. By default, a continuation without section 0 is ignored
// and one with a gap is cut short at the gap, both without error.
func WithStrictContinuations() ParseOption {
	return func(pr *parser) { pr.strict = true }
}

func newParser(opts []ParseOption) *parser {
	pr := defaultParser.clone()
	for _, opt := range opts {
		opt(pr)
	}
	return pr
}

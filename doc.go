// Package mimeparam decodes the parameters of parameterized MIME header fields,
// the part of a Content-type or Content-disposition field body that follows
// the first semicolon:
//
//	Content-type: text/plain; charset=us-ascii; title*0*=us-ascii'en'This%20is;
//	  title*1=" fun"
//
// The work is done in the param package. It follows RFC 2045 for tokens and
// quoted-strings and RFC 2231 for continued parameters (title*0, title*1, ...)
// and for charset and language tagged values (title*=charset'lang'text). MIME
// encoded words found inside quoted values are decoded as well, using the
// services of the header/field package. Decoding of encoded words that fail is
// tolerated: the encoded word is kept as it was rather than failing the parse.
//
// Some leniency is preserved on purpose. A continued parameter without a
// section 0 is ignored and one with a gap in its section numbers is cut short
// at the gap. A plain or extended value always wins over a continuation of the
// same name. The charset declared by an RFC 2231 value is not applied unless
// you ask for it with param.WithCharsetTranscoding. By default, only us-ascii,
// iso-8859-1, and utf-8 are understood; import the header/encoding package to
// support every charset known to golang.org/x/text:
//
//	import _ "github.com/zostay/go-mimeparam/header/encoding"
//
// The cmd/mimeparam command provides a command line front-end for trying
// parameter strings out.
package mimeparam

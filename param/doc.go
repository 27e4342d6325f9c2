// Package param provides a tool for dealing with parameterized headers. These
// headers include the Content-type and Content-disposition header.
//
// The heart of the package is ParseParameters, which decodes the parameters
// that follow the primary value of such a header according to RFC 2045 and the
// RFC 2231 extensions. It happens in two steps, which are also available on
// their own:
//
//   - Tokenize breaks the string into raw name=value units, rejecting anything
//     that does not fit the grammar.
//   - Assemble decodes each unit and joins continued parameters (name*0,
//     name*1, ...) back together.
//
// Quoted values are unquoted and any MIME encoded words inside them are
// decoded. Extended values (name*=charset'lang'text) are percent-decoded. The
// declared charset is not applied unless WithCharsetTranscoding is given.
//
// In addition, it provides the Value type for a whole header field body, with
// helper methods for breaking down the MIME types that get set in the
// Content-type header and the dates set in the Content-disposition header.
package param

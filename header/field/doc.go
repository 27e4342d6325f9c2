// Package field provides the transcoding services used when decoding the
// bodies of header fields: RFC 2047 encoded words and the charset decoder
// shared with RFC 2231 parameter values.
package field

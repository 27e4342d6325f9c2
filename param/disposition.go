package param

import (
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
)

// Parameters of the Content-disposition header defined by RFC 2183.
const (
	CreationDate     = "creation-date"
	ModificationDate = "modification-date"
	ReadDate         = "read-date"
	Size             = "size"
)

// UnixDateWithEarlyYear is a date format seen in the wild that the usual
// parsers have trouble with.
const UnixDateWithEarlyYear = "Mon Jan 2 2006 15:04:05 -0700"

// ErrNoSuchParameter is returned by the typed parameter accessors when the
// parameter is not set.
var ErrNoSuchParameter = errors.New("no such parameter")

// ParseTime parses a date parameter. This will attempt to parse the date using
// the format specified by RFC 5322 first, as RFC 2183 requires, and fallback to
// parsing it in many other formats.
//
// It either returns a parsed time or the parse error.
func ParseTime(body string) (time.Time, error) {
	t, err := mail.ParseDate(body)
	if err == nil {
		return t, nil
	}

	t, err = dateparse.ParseAny(body)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse(UnixDateWithEarlyYear, body)
	if err == nil {
		return t, nil
	}

	return t, fmt.Errorf("time string %q cannot be parsed", body)
}

func (pv *Value) getTime(name string) (time.Time, error) {
	body, ok := pv.ps[name]
	if !ok {
		return time.Time{}, ErrNoSuchParameter
	}

	return ParseTime(body)
}

// CreationDate returns the "creation-date" parameter of a Content-disposition
// as a time.Time.
func (pv *Value) CreationDate() (time.Time, error) {
	return pv.getTime(CreationDate)
}

// ModificationDate returns the "modification-date" parameter of a
// Content-disposition as a time.Time.
func (pv *Value) ModificationDate() (time.Time, error) {
	return pv.getTime(ModificationDate)
}

// ReadDate returns the "read-date" parameter of a Content-disposition as a
// time.Time.
func (pv *Value) ReadDate() (time.Time, error) {
	return pv.getTime(ReadDate)
}

// Size returns the "size" parameter of a Content-disposition, the approximate
// size of the file in octets.
func (pv *Value) Size() (int64, error) {
	body, ok := pv.ps[Size]
	if !ok {
		return 0, ErrNoSuchParameter
	}

	n, err := strconv.ParseInt(body, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("size %q cannot be parsed: %w", body, err)
	}

	return n, nil
}

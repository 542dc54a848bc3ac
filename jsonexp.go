// Package jsonexp rewrites the numbers written in exponential notation in a
// JSON document to fixed-point notation. The rewrite is purely textual:
// string literals are left alone, numbers are converted digit-by-digit
// without ever passing through a binary floating-point type, and every byte
// outside the rewritten numbers is preserved verbatim, whitespace included.
package jsonexp

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/ccbrown/jsonexp/scanner"
)

var (
	// ErrExponentRange is returned by Replace when a matched number's
	// exponent magnitude exceeds MaxExponent.
	ErrExponentRange = errors.New("exponent magnitude exceeds the conversion bound")

	// ErrNilReplacer is returned by ReplaceFunc when the replacer is nil.
	ErrNilReplacer = errors.New("replacer must not be nil")
)

// Replace returns json with every number written in exponential notation
// outside of string literals rewritten to fixed-point notation. If a matched
// number's exponent magnitude exceeds MaxExponent, Replace fails with an
// error satisfying errors.Is(err, ErrExponentRange); use ReplaceFunc to
// handle such numbers some other way.
//
// The input does not have to be well-formed JSON. Replace only promises to
// honor string literal boundaries and to rewrite what it matches; it never
// validates the document.
func Replace(json string) (string, error) {
	return replaceAll(json, nil)
}

// ReplaceFunc is like Replace, but every matched number is rewritten to
// replacer(literal) instead of to fixed-point notation. The replacer is
// invoked synchronously, once per match in document order, with the exact
// matched text, and its return value is spliced into the output verbatim.
// No exponent bound applies: deciding how to handle oversized numbers is
// entirely up to the replacer.
func ReplaceFunc(json string, replacer func(exponential string) string) (string, error) {
	if replacer == nil {
		return "", ErrNilReplacer
	}
	return replaceAll(json, replacer)
}

func replaceAll(json string, replacer func(string) string) (string, error) {
	s := scanner.New(json)
	if !s.Scan() {
		return json, nil
	}
	var out strings.Builder
	out.Grow(len(json))
	for {
		out.WriteString(s.Prefix())
		if replacer != nil {
			out.WriteString(replacer(s.Literal()))
		} else {
			converted, err := fixedPoint(s.Sign(), s.IntegerPart(), s.FractionalPart(), s.ExponentPart())
			if err != nil {
				return "", errors.Wrapf(err, "cannot convert %q", s.Literal())
			}
			out.WriteString(converted)
		}
		if !s.Scan() {
			break
		}
	}
	out.WriteString(s.Suffix())
	return out.String(), nil
}

package jsonexp

import (
	"strconv"
	"strings"
)

// MaxExponent is the largest exponent magnitude Replace will convert. The
// bound keeps a short document from expanding into an enormous one: without
// it, a literal such as 1e999999999 would convert to a billion-digit number.
const MaxExponent = 1000

// fixedPoint converts the decomposed parts of a number in exponential
// notation to fixed-point notation by shifting the decimal point through the
// digits of the significand. The digits are never parsed as a numeric type,
// so no precision is lost at any magnitude.
func fixedPoint(sign, integer, fraction, exponent string) (string, error) {
	exp, err := parseExponent(exponent)
	if err != nil {
		return "", err
	}
	var shifted string
	if exp >= 0 {
		if exp >= len(fraction) {
			shifted = trimLeadingZeros(integer + fraction + strings.Repeat("0", exp-len(fraction)))
		} else {
			shifted = trimLeadingZeros(integer+fraction[:exp]) + "." + fraction[exp:]
		}
	} else if k := -exp; k < len(integer) {
		shifted = integer[:len(integer)-k] + "." + integer[len(integer)-k:] + fraction
	} else {
		shifted = "0." + strings.Repeat("0", k-len(integer)) + integer + fraction
	}
	return sign + shifted, nil
}

// parseExponent evaluates exponent text such as "3", "+0", or "-1000".
// Leading zeros are insignificant, so after removing them the digit count
// alone rules out oversized magnitudes before any integer conversion could
// overflow.
func parseExponent(exponent string) (int, error) {
	negative := exponent[0] == '-'
	if negative || exponent[0] == '+' {
		exponent = exponent[1:]
	}
	digits := strings.TrimLeft(exponent, "0")
	if len(digits) > 4 {
		return 0, ErrExponentRange
	}
	n, _ := strconv.Atoi(digits)
	if n > MaxExponent {
		return 0, ErrExponentRange
	}
	if negative {
		n = -n
	}
	return n, nil
}

// trimLeadingZeros removes redundant zeros from the front of an integer
// digit string, keeping one zero when nothing else remains.
func trimLeadingZeros(digits string) string {
	if trimmed := strings.TrimLeft(digits, "0"); trimmed != "" {
		return trimmed
	}
	return "0"
}

package stringutils

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/shinji-kodama/strutil/internal/optional"
)

// Literal tokens for non-finite values. ToDouble accepts them back, so
// FromDouble output always parses.
const (
	nanToken    = "NaN"
	posInfToken = "Infinity"
	negInfToken = "-Infinity"
)

// FromDouble formats v as the shortest decimal string that parses back to
// exactly v. Fixed notation is always used: no exponent, no digit
// grouping, "." as the decimal point, and no trailing zeros.
//
//	3.14  → "3.14"
//	1.0   → "1"
//	1e21  → "1000000000000000000000"
//
// NaN and the infinities render as "NaN", "Infinity" and "-Infinity".
func FromDouble(v float64) string {
	switch {
	case math.IsNaN(v):
		return nanToken
	case math.IsInf(v, 1):
		return posInfToken
	case math.IsInf(v, -1):
		return negInfToken
	}
	// Precision -1 selects the minimal digit count that round-trips.
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ToDouble parses s as a decimal floating-point literal.
//
// An absent s yields NaN with a nil error. Surrounding whitespace is
// ignored. Sign, integer part, fractional part, and an e/E exponent are
// accepted, as are the tokens produced by FromDouble for non-finite
// values. Hexadecimal literals and "_" digit separators are rejected.
//
// Malformed text returns NaN and a *ParseError wrapping
// ErrMalformedNumber. A literal too large for float64 returns ±Inf and a
// *ParseError wrapping ErrOutOfRange.
func ToDouble(s optional.Value[string]) (float64, error) {
	v, ok := s.Get()
	if !ok {
		return math.NaN(), nil
	}
	return ParseDouble(v)
}

// ParseDouble is ToDouble for a string that is always present.
func ParseDouble(s string) (float64, error) {
	text := strings.TrimSpace(s)
	if text == "" || isHexLiteral(text) || strings.ContainsRune(text, '_') {
		return math.NaN(), &ParseError{Input: s, Err: ErrMalformedNumber}
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f, &ParseError{Input: s, Err: ErrOutOfRange}
		}
		return math.NaN(), &ParseError{Input: s, Err: ErrMalformedNumber}
	}
	return f, nil
}

// isHexLiteral reports whether text has a 0x/0X prefix after an optional sign.
// strconv.ParseFloat accepts hex floats; decimal input does not.
func isHexLiteral(text string) bool {
	text = strings.TrimLeft(text, "+-")
	return len(text) >= 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X')
}

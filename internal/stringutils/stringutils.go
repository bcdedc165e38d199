package stringutils

import (
	"strings"
	"unicode"

	"github.com/shinji-kodama/strutil/internal/optional"
)

// IsEmpty reports whether s is absent, has zero length, or consists only
// of Unicode whitespace (space, tab, newline, NBSP and the rest of
// unicode.IsSpace).
func IsEmpty(s optional.Value[string]) bool {
	v, ok := s.Get()
	if !ok {
		return true
	}
	return IsBlank(v)
}

// IsBlank is IsEmpty for a string that is always present.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// ToArray splits s on every occurrence of delimiter.
//
// Empty tokens are kept, so leading, trailing, and consecutive delimiters
// all produce "" entries. A present input always yields at least one
// element: "" becomes [""]. An absent input yields None, never an empty
// slice.
func ToArray(s optional.Value[string], delimiter rune) optional.Value[[]string] {
	return optional.Map(s, func(v string) []string {
		return Split(v, delimiter)
	})
}

// Split is ToArray for a string that is always present.
//
// A delimiter for which utf8.ValidRune is false is treated as U+FFFD,
// the same replacement Join inserts for it.
// Callers reading a delimiter from user input validate it first with
// model.ParseDelimiter.
func Split(s string, delimiter rune) []string {
	return strings.Split(s, string(delimiter))
}

// JoinArray concatenates the tokens in order with delimiter between each
// pair. It is the inverse of ToArray:
//
//	JoinArray(ToArray(s, d), d) == s
//
// An empty slice joins to "", a single token joins to itself, and an
// absent slice yields None.
func JoinArray(tokens optional.Value[[]string], delimiter rune) optional.Value[string] {
	return optional.Map(tokens, func(v []string) string {
		return Join(v, delimiter)
	})
}

// Join is JoinArray for a slice that is always present. An invalid
// delimiter rune is written as U+FFFD, as in Split.
func Join(tokens []string, delimiter rune) string {
	return strings.Join(tokens, string(delimiter))
}

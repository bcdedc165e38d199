// Package stringutils implements delimiter-based split/join, whitespace-aware
// emptiness checks, and canonical float64 <-> string conversion.
//
// Every function is pure: no shared state, no I/O, safe for concurrent use.
//
// Inputs that may be missing are passed as optional.Value. Absence is a
// first-class case rather than an error:
//
//	IsEmpty(None)       == true
//	ToArray(None, d)    == None
//	JoinArray(None, d)  == None
//	ToDouble(None)      == NaN, nil
//
// The plain-string helpers (IsBlank, Split, Join, ParseDouble) are thin
// wrappers for callers that always hold a value.
package stringutils

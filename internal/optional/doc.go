// Package optional provides an explicit absent-or-present value type.
//
// Go strings and float64 values have no null state, so operations that
// must distinguish "no value" from an empty value take and return
// Value[T]. Absence is propagated with Map rather than coerced into a
// zero value.
package optional

package compare

import (
	"cmp"
	"strings"
)

// Interface defines how ordering can be implemented by a type itself.
//
// Types implementing this interface must provide a Compare method that defines the ordering of values.
// This pattern is useful when working with:
// 1. Custom user-defined types requiring comparison logic
// 2. Keys of a sorted collection which are not cmp.Ordered
//
// Example usage:
//
//	type MyNumber int
//
//	func (m MyNumber) Compare(other MyNumber) int {
//		if m < other {
//			return -1
//		}
//		if other < m {
//			return +1
//		}
//		return 0
//	}
type Interface[T any] interface {
	// Compare returns:
	//   -1 if receiver is less than the argument,
	//    0 if they're equal, and
	//   +1 if receiver is greater.
	//
	// Implementors must ensure consistent ordering semantics.
	Compare(T) int
}

// OrderFunc is the shape of an ordering function, compatible with cmp.Compare and slices.SortFunc.
type OrderFunc[T any] func(a, b T) int

// IsEqual reports whether two values are equal based on their comparison result.
func IsEqual(cmp int) bool {
	return cmp == 0
}

// IsLess reports whether the receiver is less than another value.
func IsLess(cmp int) bool {
	return cmp < 0
}

// IsLessOrEqual reports whether the receiver is less than or equal to another value.
func IsLessOrEqual(cmp int) bool {
	return cmp <= 0
}

// IsMore reports whether the receiver is greater than another value.
func IsMore(cmp int) bool {
	return 0 < cmp
}

// IsMoreOrEqual reports whether the receiver is more than or equal to another value.
func IsMoreOrEqual(cmp int) bool {
	return 0 <= cmp
}

// Ordered compares two cmp.Ordered values and normalises the result to -1, 0 or +1.
func Ordered[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

func Strings[S ~string](a, b S) int {
	return strings.Compare(string(a), string(b))
}

// Method turns the Compare method of an Interface implementation into a Func.
func Method[T Interface[T]](a, b T) int {
	return a.Compare(b)
}

// Reverse flips the direction of an ordering function.
func Reverse[T any](fn OrderFunc[T]) OrderFunc[T] {
	return func(a, b T) int { return fn(b, a) }
}

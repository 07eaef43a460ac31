package iterkit

import "slices"

// Buffer materialises the source into a new slice in enumeration order.
//
// Array-like sources are copied element by element,
// and sources which can convert themselves to a slice are snapshotted through ToSlice.
// Everything else, or any source when forceIterate is true, is drained through a cursor.
// The result never aliases the source's storage.
// Buffering a single use source exhausts it.
func Buffer[T any](src Iterable[T], forceIterate ...bool) []T {
	if src == nil {
		return []T{}
	}
	if len(forceIterate) == 0 || !forceIterate[0] {
		switch src := src.(type) {
		case Indexer[T]:
			out := make([]T, src.Len())
			for i := range out {
				out[i] = src.At(i)
			}
			return out
		case interface{ ToSlice() []T }:
			if vs := slices.Clone(src.ToSlice()); vs != nil {
				return vs
			}
			return []T{}
		}
	}
	return Collect(src)
}

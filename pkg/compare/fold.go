package compare

import (
	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/cases"
)

// FoldString compares strings case-insensitively, using Unicode full case folding.
// "Straße" and "STRASSE" are equal under FoldString.
func FoldString() Comparer[string] { return foldComparer{} }

type foldComparer struct{}

func (foldComparer) Equal(a, b string) bool { return fold(a) == fold(b) }

func (foldComparer) Hash(v string) uint64 { return xxhash.Sum64String(fold(v)) }

func fold(s string) string {
	// a cases.Caser is stateful, so every call gets its own
	return cases.Fold().String(s)
}

// Package doubles holds test doubles for the roles of enumkit.
package doubles

import "github.com/enumkit/enumkit/pkg/compare"

//go:generate mockgen -package doubles -destination MockStringComparer.go github.com/enumkit/enumkit/internal/doubles StringComparer

// StringComparer is the non-generic form of compare.Comparer[string], so mockgen can generate a mock for it.
type StringComparer interface {
	compare.Comparer[string]
}

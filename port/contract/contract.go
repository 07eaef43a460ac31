package contract

import (
	"testing"

	"go.llib.dev/testcase"
)

// Make creates a fresh instance of the subject under test.
// A contract calls it once per test case.
type Make[Subject any] = func(tb testing.TB) Subject

// Contract is a reusable set of behaviour tests.
// The same contract runs against every implementation of a role.
type Contract interface {
	testcase.Suite
	Test(*testing.T)
	Benchmark(*testing.B)
}

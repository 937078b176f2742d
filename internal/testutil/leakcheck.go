// Package testutil provides testing utilities for the About dialog.
package testutil

import (
	"testing"

	"go.uber.org/goleak"
)

// VerifyNoLeaks should be deferred at the start of tests that spawn goroutines.
// It verifies that no goroutines were leaked during the test.
func VerifyNoLeaks(t *testing.T, opts ...goleak.Option) {
	t.Helper()
	goleak.VerifyNone(t, opts...)
}

// VerifyPackage runs the tests of a package and fails the run if any goroutine
// is still alive afterwards. Call it from TestMain in packages that never start
// a Fyne app.
func VerifyPackage(m *testing.M, opts ...goleak.Option) {
	goleak.VerifyTestMain(m, opts...)
}

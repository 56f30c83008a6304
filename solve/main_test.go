package solve_test

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain verifies no test leaves a goroutine behind: the loop is
// synchronous and must not spawn anything.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

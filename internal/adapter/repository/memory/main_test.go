package memory

import (
	"testing"

	"github.com/tejashwikalptaru/aboutdocs/internal/testutil"
)

func TestMain(m *testing.M) {
	testutil.VerifyPackage(m)
}

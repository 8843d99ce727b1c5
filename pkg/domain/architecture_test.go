package domain

import (
	"testing"

	"carehome/testutil"
)

// The domain layer is shared by every backend and the CLI; it stays on the
// standard library.
func TestDomainImportsStayPure(t *testing.T) {
	testutil.AssertNoDirectImports(t, ".", testutil.Any(testutil.InternalImport, testutil.ThirdPartyImport),
		"domain must not depend on internal or third-party packages")
}

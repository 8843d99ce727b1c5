package bucket

import (
	"testing"

	"carehome/testutil"
)

func TestBackendsDoNotImportRegistry(t *testing.T) {
	for _, dir := range []string{".", "../file", "../memory", "../postgres", "../redis", "../sqlite"} {
		testutil.AssertNoDirectImports(t, dir, testutil.RegistryImport, "snapshot backends depend only on domain")
	}
}

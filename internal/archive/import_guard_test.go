package archive

import (
	"testing"

	"carehome/testutil"
)

func TestArchiveDoesNotImportRegistry(t *testing.T) {
	testutil.AssertNoDirectImports(t, ".", testutil.RegistryImport, "archive sinks are handed to the registry")
}

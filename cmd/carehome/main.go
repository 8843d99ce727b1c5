// Command carehome administers a residential care facility registry: beds,
// residents, staff rosters, prescriptions and the audit trail.
package main

import (
	"fmt"
	"os"
)

var version = "dev"

func main() {
	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// --- START OF FINAL REVISED FILE cmd/sovereign-doc/main.go ---
package main

import "os"

// Note: Build-time variables 'version', 'commit', and 'date' are declared
// in 'root.go' within this package. They are populated at build time via -ldflags.

// main is the entry point for the sovereign-doc application.
func main() {
	os.Exit(Execute())
}

// --- END OF FINAL REVISED FILE cmd/sovereign-doc/main.go ---

// Command compare prints the edit patterns between two token sequences as
// computed by each available diff backend, and optionally the
// alignment-based edits for a given word alignment.
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// "hashgo" hashes command-line inputs with the accumulators provided by
// the hashgo library, plus xxhash and SipHash for comparison.
package main

import (
	"fmt"
	"os"

	"github.com/hupe1980/hashgo/cmd/hashgo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "hashgo exited with error: %v\n", err)
		os.Exit(1)
	}
}

// Command lophi reduces a credit-risk feature table to the subset that
// survives missing-data, information-value and correlation screening, and
// writes a report archive documenting every decision.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lophi:", err)
		os.Exit(exitCodeFor(err))
	}
}

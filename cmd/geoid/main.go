// Command geoid formats, sorts and enumerates detector element identifiers.
package main

import (
	"fmt"
	"os"
)

func main() {
	cli := newCLI()
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

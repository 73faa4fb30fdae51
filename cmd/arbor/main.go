// Command arbor renders the arbor widget gallery headlessly.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/arbor/cmd/arbor/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

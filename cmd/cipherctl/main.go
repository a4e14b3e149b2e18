package main

import (
	"fmt"
	"os"

	"github.com/AbaydullinAA/Project-Module2/console"
)

func main() {
	r := console.NewRunner(console.RunnerConfig{})
	if err := r.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

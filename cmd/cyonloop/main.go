package main

import (
	"fmt"
	"os"

	"github.com/Luka12-dev/Cyon-sub001/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/pemdes/webdesa/cmd/desactl/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/Quuxplusone/xword/cmd/xword/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

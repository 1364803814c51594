package main

import (
	"os"

	"github.com/hktkzyx/engineering-toolbox/cmd/engineering-toolbox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/uyouii/measurement-stats/cmd/mstats/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

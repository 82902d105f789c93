package main

import (
	"os"

	"github.com/msto63/nslist/cmd/nslist/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/hisamafahri/lagon/cmd"
)

func main() {
	if err := cmd.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

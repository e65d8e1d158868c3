package main

import (
	"os"

	"github.com/intervue-ai/intervue/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

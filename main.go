package main

import (
	"os"

	"github.com/arbiterhq/colloquy/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

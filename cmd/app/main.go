package main

import (
	"os"

	"github.com/Godkunn/Ocean-Watch/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}

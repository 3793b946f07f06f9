package main

import (
	"fmt"
	"os"

	"github.com/blocklearn/blocklearn/cmd"
)

func main() {
	if err := cmd.RootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

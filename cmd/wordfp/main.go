package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/wordfp/cmd/wordfp/cmd"
)

func main() {
	if err := cmd.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "wordfp: %v\n", err)
		os.Exit(1)
	}
}

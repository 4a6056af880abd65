package main

import (
	"os"

	"github.com/smazurov/nucledctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

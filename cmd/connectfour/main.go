package main

import (
	"os"

	"github.com/iamasit07/connect-four/cmd/connectfour/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/hobeone/pepfeed/commands"
)

func main() {
	if err := commands.PepfeedCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

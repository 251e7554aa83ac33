package main

import (
	"os"

	"github.com/tondeal/offer-flow-svc/internal/cli"
)

func main() {
	if !cli.Run(os.Args) {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/melvinotieno/site/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/roach88/tasklog/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}

package main

import (
	"os"

	"github.com/dgrist/revu/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}

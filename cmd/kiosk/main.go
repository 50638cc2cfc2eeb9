package main

import (
	"os"

	"github.com/dmitrijs2005/hrakiosk/internal/kiosk/cli"
)

func main() {
	os.Exit(cli.Execute())
}

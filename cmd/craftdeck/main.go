package main

import (
	"github.com/craftdeck/craftdeck/internal/cli"
)

func main() {
	cli.Execute()
}

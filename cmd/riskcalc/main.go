package main

import (
	"github.com/rustyeddy/riskcalc/internal/cli"
)

func main() {
	cli.Execute()
}

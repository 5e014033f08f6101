package main

import "github.com/tmazur/sketchbluff/internal/cli"

func main() {
	cli.Execute()
}

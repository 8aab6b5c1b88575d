package main

import "github.com/emiliopalmerini/swatches/internal/cli"

func main() {
	cli.Execute()
}

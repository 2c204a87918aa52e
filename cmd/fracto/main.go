package main

import "github.com/afuentes/fracto/internal/cli"

func main() {
	cli.Execute()
}

package main

import "github.com/rustyeddy/mcsim/internal/cli"

func main() {
	cli.Execute()
}

package main

import (
	"github.com/anytypeio/go-notion-export/cli"
)

func main() {
	cli.Execute()
}

package main

import (
	"github.com/viennacmp/dga/cmd/dgaconf/cli"
)

func main() {
	cli.Execute()
}

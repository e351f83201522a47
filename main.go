package main

import (
	"github.com/solverity/solverity/cmd"
)

func main() {
	cmd.Execute()
}

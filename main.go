package main

import (
	"github.com/tunein/compute-benchmark-cli/cmd"
)

func main() {
	cmd.Execute()
}

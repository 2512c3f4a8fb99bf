package main

import (
	"github.com/ssargent/edda/cmd/edda/cmd"
)

func main() {
	cmd.Execute()
}

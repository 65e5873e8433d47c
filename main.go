package main

import (
	"github.com/sgc-cli/sgc/cmd"
)

func main() {
	cmd.Execute()
}

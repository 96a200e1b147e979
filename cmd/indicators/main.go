package main

import (
	"github.com/c9s/indicators/pkg/cmd"
)

func main() {
	cmd.Execute()
}

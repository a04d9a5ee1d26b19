package main

import (
	"github.com/AzielCF/az-medqa/cmd"
)

func main() {
	cmd.Execute()
}

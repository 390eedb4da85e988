package main

import (
	"github.com/chiplab/chipletc/cmd"
)

func main() {
	cmd.Execute()
}

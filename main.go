package main

import "github.com/notargets/fluidq/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/notargets/hyperweno/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/notargets/goriemann/cmd"

func main() {
	cmd.Execute()
}

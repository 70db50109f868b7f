package main

import "github.com/itsmostafa/replcalc/cmd"

func main() {
	cmd.Execute()
}

package main

import "csvdiff/cmd"

func main() {
	cmd.Execute()
}

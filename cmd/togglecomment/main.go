package main

import "togglecomment/cmd/togglecomment/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/tkarvinen/moviedeck/cmd"

var execute = cmd.Execute

func main() {
	execute()
}

package main

import "github.com/katalvlaran/simplegraph/cmd/graphstat/commands"

func main() {
	commands.Execute()
}

package main

import "github.com/mcruz/chatterm/internal/commands"

func main() {
	commands.Execute()
}

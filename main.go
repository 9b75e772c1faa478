package main

import "github.com/todocli/todo/cmd"

func main() {
	cmd.Execute()
}

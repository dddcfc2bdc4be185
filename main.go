package main

import "github.com/Platzhalten/tux/cmd"

func main() {
	cmd.Execute()
}

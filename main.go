package main

import "github.com/promptsmith/guidectl/cmd"

func main() {
	cmd.Execute()
}

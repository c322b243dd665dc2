package main

import "moderation-diff/cmd"

func main() {
	cmd.Execute()
}

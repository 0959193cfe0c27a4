package main

import "version-counter/cmd"

func main() {
	cmd.Execute()
}

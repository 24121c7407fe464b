package main

import "github.com/mouse-blink/turtle/cmd"

func main() {
	cmd.Execute()
}

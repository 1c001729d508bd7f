package main

import "github.com/mouse-blink/deflake/cmd"

func main() {
	cmd.Execute()
}

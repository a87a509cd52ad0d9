package main

import "github.com/mouse-blink/grouplist/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/stakahashi/commitspan/cmd"

func main() {
	cmd.Run()
}

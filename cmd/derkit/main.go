package main

import "github.com/erincandescent/derkit/cmd"

func main() {
	cmd.MainCmd()
}

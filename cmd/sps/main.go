package main

import "github.com/prilectro1098/stone-paper-scissor-game/internal/cli"

func main() {
	cli.Execute()
}

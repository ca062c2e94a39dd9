package main

import "spinslider/internal/cli"

func main() {
	cli.Execute()
}

package main

import (
	"github.com/sweeplabs/sweep-bridging/cli"
)

func main() {
	cli.Execute()
}

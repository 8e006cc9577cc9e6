package main

import (
	"github.com/onrelay/relay-go/cmd/relay-inspect/cmd"
)

func main() {
	cmd.Execute()
}

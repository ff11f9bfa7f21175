package main

import "github.com/nfrund/tinyhouse/cmd/tinyhouse-cli/cmd"

func main() {
	cmd.Execute()
}

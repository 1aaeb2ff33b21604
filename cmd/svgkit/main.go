package main

import "github.com/ideamans/svgkit/cmd/svgkit/cmd"

func main() {
	cmd.Execute()
}

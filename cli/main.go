package main

import "github.com/tcfw/appolicy/cli/cmd"

func main() {
	cmd.Execute()
}

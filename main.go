package main

import "minegraph/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/redmarklab/redmark/cmd/redmark/cmd"

func main() {
	cmd.Execute()
}

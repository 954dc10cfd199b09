package main

import "github.com/strrl/socialgen/internal/cmd"

func main() {
	cmd.Execute()
}

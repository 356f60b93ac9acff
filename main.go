package main

import "github.com/badmax333/LaserProcessing/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/carson-networks/expensum/cmd"

func main() {
	cmd.Execute()
}

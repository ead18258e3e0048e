package main

import "github.com/bmathews04/Lease-vs-Buy-Tool/cmd"

func main() {
	cmd.Execute()
}

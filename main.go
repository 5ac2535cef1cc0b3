package main

import "github.com/pocketfin/pocket/cmd"

func main() {
	cmd.Execute()
}

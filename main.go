package main

import "github.com/cogwheel/jayvee/cmd"

func main() {
	cmd.Execute()
}

package main

import (
	"ami-promoter/cmd"
)

func main() {
	cmd.Execute()
}

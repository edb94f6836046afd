package main

import (
	_ "time/tzdata"

	"support-kit/cmd"
)

func main() {
	cmd.Execute()
}

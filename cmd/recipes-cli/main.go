package main

import (
	"recipevault-backend/cmd/recipes-cli/cmd"
)

func main() {
	cmd.Execute()
}

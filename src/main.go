package main

import (
	"github.com/strucureo/inity-setup/src/cmd"
)

func main() {
	cmd.Execute()
}

// twophase - CLI application for solving and scrambling Rubik's Cubes.
package main

import (
	"github.com/toughmanshawn/rob-twophase/internal/cli"
)

func main() {
	cli.Execute()
}

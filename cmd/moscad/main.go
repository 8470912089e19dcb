// Command moscad searches for the smallest CMOS transistor network that
// realizes a target truth table.
package main

import (
	"log"
	"os"

	"github.com/silicasynth/moscad/cmd/moscad/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.New(os.Stderr, "moscad: ", 0).Println(err)
		os.Exit(1)
	}
}

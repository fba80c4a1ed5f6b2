package main

import (
	"errors"
	"os"
)

func main() {
	a := &app{in: os.Stdin, out: os.Stdout, errOut: os.Stderr}
	if err := a.rootCmd().Execute(); err != nil {
		if !errors.Is(err, errNotFound) {
			a.printError(err)
		}
		os.Exit(1)
	}
}

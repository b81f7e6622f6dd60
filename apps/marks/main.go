package main

import (
	"os"

	"github.com/trezcool/marksheet/core"
)

func main() {
	conf, err := core.NewConfig()
	if err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}

	cli := newCommandLine(conf, os.Stdin, os.Stdout)
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			printError(os.Stderr, err)
		}
		os.Exit(1)
	}
}

package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := initCLI().Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}

func initCLI() *cli.App {
	return &cli.App{
		Name:   "slldemo",
		Usage:  "Walks through every sll list operation and prints the list after each step",
		Flags:  newFlags(),
		Action: runDemo,
	}
}

func newFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntSliceFlag{
			Name:  "values",
			Value: cli.NewIntSlice(0, 1, 2, 3, 4),
			Usage: "Values to seed both demo lists with, in order",
		},
		&cli.StringFlag{
			Name:  "terminator",
			Value: "NULL",
			Usage: "Marker printed after the last node",
		},
		&cli.BoolFlag{
			Name:  "compact",
			Usage: "Print bare values instead of Node[<index>]: <value>",
		},
	}
}

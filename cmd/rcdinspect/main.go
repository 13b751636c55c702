package main

import (
	"errors"
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/rcd"
	"github.com/bodgit/rcd/page"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "rcdinspect"
	app.Usage = "Dump the blocks and sprites of FreeRCT RCD files"
	app.Version = "1.0.0"
	app.ArgsUsage = "FILE..."

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			EnvVars: []string{"RCD_OUTPUT"},
			Value:   cwd,
			Usage:   "directory to write sprite pages to",
		},
		&cli.StringFlag{
			Name:  "prefix",
			Value: "img",
			Usage: "filename prefix of sprite pages",
		},
		&cli.IntFlag{
			Name:  "colors",
			Value: 0,
			Usage: "reduce sprite pages to this many colors, 0 keeps the full palette",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		if c.NArg() < 1 {
			cli.ShowAppHelpAndExit(c, 1)
		}

		logger := log.New(ioutil.Discard, "", 0)
		if c.Bool("verbose") {
			logger.SetOutput(os.Stderr)
		}

		pages := &page.FileWriter{
			Dir:    c.String("output"),
			Prefix: c.String("prefix"),
			Colors: c.Int("colors"),
		}

		in := rcd.New(os.Stdout, pages, logger)

		for _, file := range c.Args().Slice() {
			if err := in.InspectFile(file); err != nil {
				// A file which isn't RCD doesn't stop the others
				if errors.Is(err, rcd.ErrSignature) {
					logger.Println(err)
					continue
				}
				return cli.NewExitError(err, 1)
			}
		}

		logger.Printf("Wrote %d sprite page(s)\n", pages.Written())

		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

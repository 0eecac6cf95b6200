package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var log = logrus.WithFields(logrus.Fields{
	"app":    "bs58",
	"prefix": "main",
})

var app = cli.NewApp()

func init() {
	app.Name = "bs58"
	app.Usage = "encode, decode and benchmark Base58 text"
	app.Version = "2.0.0"
	app.Before = before
	app.Commands = []cli.Command{
		{
			Name:      "encode",
			Aliases:   []string{"e"},
			Usage:     "encodes the argument (or stdin) as Base58",
			ArgsUsage: "[input]",
			Flags:     EncodeFlags,
			Action:    encodeAction,
		},
		{
			Name:      "decode",
			Aliases:   []string{"d"},
			Usage:     "decodes Base58 text from the argument (or stdin)",
			ArgsUsage: "[text]",
			Flags:     DecodeFlags,
			Action:    decodeAction,
		},
		{
			Name:   "bench",
			Usage:  "times repeated encode and decode calls",
			Flags:  BenchFlags,
			Action: benchAction,
		},
		{
			Name:   "alphabets",
			Usage:  "lists the built-in alphabets",
			Action: alphabetsAction,
		},
	}
	app.Flags = append(app.Flags, CLIFlags...)
}

func main() {
	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import "github.com/urfave/cli"

var (
	// AlphabetFlag selects a preset by name or supplies 58 custom characters
	AlphabetFlag = cli.StringFlag{
		Name:  "alphabet, a",
		Usage: "alphabet preset (bitcoin, monero, ripple, flickr) or 58 custom characters",
	}

	// LogLevelFlag flag to set log level
	LogLevelFlag = cli.StringFlag{
		Name:  "loglevel",
		Usage: "log level, eg: (debug, info, warn, error)",
	}

	// ConfigFlag points at an optional config file
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "path to a TOML, YAML or JSON config file",
	}

	HexFlag = cli.BoolFlag{
		Name:  "hex",
		Usage: "treat raw bytes as hex",
	}

	CheckFlag = cli.BoolFlag{
		Name:  "check",
		Usage: "use Base58Check (version byte and double SHA-256 checksum)",
	}

	VersionByteFlag = cli.IntFlag{
		Name:  "version-byte",
		Usage: "version byte for --check",
	}

	IterationsFlag = cli.IntFlag{
		Name:  "iterations",
		Usage: "number of calls per operation",
	}

	InputFlag = cli.StringFlag{
		Name:  "input",
		Value: "999",
		Usage: "bytes to encode during the benchmark",
	}
)

var (
	// CLIFlags flags usable in a CLI context
	CLIFlags = []cli.Flag{
		AlphabetFlag,
		LogLevelFlag,
		ConfigFlag,
	}

	EncodeFlags = []cli.Flag{HexFlag, CheckFlag, VersionByteFlag}
	DecodeFlags = []cli.Flag{HexFlag, CheckFlag}
	BenchFlags  = []cli.Flag{HexFlag, IterationsFlag, InputFlag}
)

package main

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/urfave/cli"

	"github.com/paraglidehq/bs58/base58"
)

// Config holds the settings shared by all commands. Values come from, in
// increasing priority: defaults, the config file, BS58_* environment
// variables and explicitly set flags.
type Config struct {
	Alphabet   string `mapstructure:"alphabet"`
	LogLevel   string `mapstructure:"loglevel"`
	Iterations int    `mapstructure:"iterations"`
}

// conf is loaded once by before.
var conf Config

func loadConfig(ctx *cli.Context) (Config, error) {
	v := viper.New()
	v.SetDefault("alphabet", "bitcoin")
	v.SetDefault("loglevel", "info")
	v.SetDefault("iterations", 1000000)

	// Bind BS58_ALPHABET, BS58_LOGLEVEL and BS58_ITERATIONS
	v.SetEnvPrefix("bs58")
	v.AutomaticEnv()

	if file := ctx.GlobalString(ConfigFlag.Name); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config file %s", file)
		}
	}

	for _, name := range []string{"alphabet", "loglevel"} {
		if ctx.GlobalIsSet(name) {
			v.Set(name, ctx.GlobalString(name))
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	return c, nil
}

// before loads the config and configures logging ahead of any command.
func before(ctx *cli.Context) error {
	c, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return errors.Wrap(err, "could not parse loglevel")
	}
	logrus.SetLevel(level)

	if _, err := resolveAlphabet(c.Alphabet); err != nil {
		return err
	}

	conf = c
	log.WithFields(logrus.Fields{
		"alphabet": c.Alphabet,
		"config":   ctx.GlobalString(ConfigFlag.Name),
	}).Debug("configuration loaded")
	return nil
}

// resolveAlphabet accepts a preset name or a full 58-character alphabet.
func resolveAlphabet(s string) (*base58.Alphabet, error) {
	if len(s) == base58.Radix {
		a, err := base58.NewAlphabet(s)
		return a, errors.Wrap(err, "custom alphabet")
	}
	a, err := base58.Preset(s)
	return a, errors.Wrap(err, "alphabet")
}

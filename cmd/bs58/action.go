package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/paraglidehq/bs58/base58"
)

// stdin is read when a command gets no argument.
var stdin io.Reader = os.Stdin

// readArg returns the first argument, or all of stdin without a single
// trailing "\n" or "\r\n".
func readArg(ctx *cli.Context) (string, error) {
	if ctx.NArg() > 1 {
		return "", fmt.Errorf("expected at most one argument, got %d", ctx.NArg())
	}
	if ctx.NArg() == 1 {
		return ctx.Args().First(), nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", errors.Wrap(err, "read stdin")
	}
	in := string(b)
	if t, ok := strings.CutSuffix(in, "\n"); ok {
		in = strings.TrimSuffix(t, "\r")
	}
	return in, nil
}

// parseInput turns command input into bytes, decoding hex when asHex is set.
func parseInput(s string, asHex bool) ([]byte, error) {
	if !asHex {
		return []byte(s), nil
	}
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	b, err := hex.DecodeString(s)
	return b, errors.Wrap(err, "invalid hex input")
}

func formatOutput(b []byte, asHex bool) string {
	if asHex {
		return hex.EncodeToString(b)
	}
	return string(b)
}

func encodeAction(ctx *cli.Context) error {
	a, err := resolveAlphabet(conf.Alphabet)
	if err != nil {
		return err
	}
	arg, err := readArg(ctx)
	if err != nil {
		return err
	}
	in, err := parseInput(arg, ctx.Bool(HexFlag.Name))
	if err != nil {
		return err
	}

	var out string
	if ctx.Bool(CheckFlag.Name) {
		version := ctx.Int(VersionByteFlag.Name)
		if version < 0 || version > 0xff {
			return fmt.Errorf("version byte %d out of range", version)
		}
		out = a.CheckEncode(in, byte(version))
	} else {
		out = a.Encode(in)
	}

	_, err = fmt.Fprintln(ctx.App.Writer, out)
	return err
}

func decodeAction(ctx *cli.Context) error {
	a, err := resolveAlphabet(conf.Alphabet)
	if err != nil {
		return err
	}
	arg, err := readArg(ctx)
	if err != nil {
		return err
	}
	text := strings.TrimSpace(arg)

	var out []byte
	if ctx.Bool(CheckFlag.Name) {
		var version byte
		out, version, err = a.CheckDecode(text)
		if err != nil {
			return errors.Wrapf(err, "decode %q", text)
		}
		log.WithField("version", version).Info("checksum verified")
	} else {
		out, err = a.Decode(text)
		if err != nil {
			return errors.Wrapf(err, "decode %q", text)
		}
	}

	_, err = fmt.Fprintln(ctx.App.Writer, formatOutput(out, ctx.Bool(HexFlag.Name)))
	return err
}

// benchResult is the outcome of timing one operation.
type benchResult struct {
	Op         string
	Iterations int
	Elapsed    time.Duration
}

func (r benchResult) NsPerOp() int64 {
	if r.Iterations == 0 {
		return 0
	}
	return r.Elapsed.Nanoseconds() / int64(r.Iterations)
}

// bench calls encode and decode n times each on in.
func bench(a *base58.Alphabet, in []byte, n int) ([]benchResult, error) {
	encoded := a.Encode(in)

	start := time.Now()
	for i := 0; i < n; i++ {
		_ = a.Encode(in)
	}
	enc := benchResult{Op: "encode", Iterations: n, Elapsed: time.Since(start)}

	start = time.Now()
	for i := 0; i < n; i++ {
		if _, err := a.Decode(encoded); err != nil {
			return nil, errors.Wrap(err, "decode during benchmark")
		}
	}
	dec := benchResult{Op: "decode", Iterations: n, Elapsed: time.Since(start)}

	return []benchResult{enc, dec}, nil
}

func benchAction(ctx *cli.Context) error {
	a, err := resolveAlphabet(conf.Alphabet)
	if err != nil {
		return err
	}
	in, err := parseInput(ctx.String(InputFlag.Name), ctx.Bool(HexFlag.Name))
	if err != nil {
		return err
	}
	n := conf.Iterations
	if ctx.IsSet(IterationsFlag.Name) {
		n = ctx.Int(IterationsFlag.Name)
	}
	if n <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", n)
	}

	log.WithFields(logrus.Fields{
		"alphabet":   conf.Alphabet,
		"bytes":      len(in),
		"iterations": n,
	}).Info("starting benchmark")

	results, err := bench(a, in, n)
	if err != nil {
		return err
	}
	for _, r := range results {
		log.WithFields(logrus.Fields{
			"op":      r.Op,
			"elapsed": r.Elapsed,
			"ns/op":   r.NsPerOp(),
		}).Info("benchmark done")
		if _, err := fmt.Fprintf(ctx.App.Writer, "%s\t%d\t%d ns/op\n", r.Op, r.Iterations, r.NsPerOp()); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(ctx.App.Writer, a.Encode(in))
	return err
}

func alphabetsAction(ctx *cli.Context) error {
	for _, name := range base58.PresetNames() {
		a, err := base58.Preset(name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(ctx.App.Writer, "%-8s %s\n", name, a); err != nil {
			return err
		}
	}
	return nil
}

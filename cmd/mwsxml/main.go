// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

// The mwsxml command converts between MWS XML documents and more convenient
// formats.
//
// The decode subcommand reads a response document and prints it as JSON:
//
//	mwsxml decode -type list-fulfillment-orders response.xml
//
// The envelope subcommand reads inventory messages from a YAML file and prints
// an inventory feed envelope ready to be submitted:
//
//	mwsxml envelope -merchant A1B2C3 inventory.yaml
//
// Input is read from stdin if no file is given.
// The merchant identifier defaults to $MWS_MERCHANT_ID, indentation of the
// output can be turned off with MWS_XML_INDENT=false and MWS_XML_VERBOSE=true
// has the same effect as -v.
//
// For more information run mwsxml -help.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

const usage = `Usage: mwsxml [-v] <command> [flags] [file]

Commands:
  decode    decode a response document and print it as JSON
  envelope  build an inventory feed envelope from YAML messages
`

var errUsage = errors.New("invalid usage")

func main() {
	logger := log.New(os.Stderr, "mwsxml: ", 0)
	err := run(os.Args[1:], nil, os.Stdin, os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errUsage):
		os.Exit(2)
	default:
		logger.Print(err)
		os.Exit(1)
	}
}

// run executes the command line in args.
// If environ is nil the process environment is used.
func run(args []string, environ map[string]string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(environ)
	if err != nil {
		return err
	}

	flags := flag.NewFlagSet("mwsxml", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprint(stderr, usage)
	}
	flags.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Show verbose logging.")
	if err := flags.Parse(args); err != nil {
		return err
	}

	logger := log.New(io.Discard, "mwsxml: ", 0)
	if cfg.Verbose {
		logger.SetOutput(stderr)
	}

	args = flags.Args()
	if len(args) < 1 {
		flags.Usage()
		return errUsage
	}
	cmd := command{
		cfg:    cfg,
		logger: logger,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
	switch args[0] {
	case "decode":
		return cmd.decode(args[1:])
	case "envelope":
		return cmd.envelope(args[1:])
	}
	fmt.Fprintf(stderr, "unknown command %q\n", args[0])
	flags.Usage()
	return errUsage
}

type command struct {
	cfg    config
	logger *log.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// open returns the file named by the only remaining argument or stdin.
func (c command) open(args []string) (io.ReadCloser, error) {
	switch len(args) {
	case 0:
		return io.NopCloser(c.stdin), nil
	case 1:
		if args[0] == "-" {
			return io.NopCloser(c.stdin), nil
		}
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("error opening input: %w", err)
		}
		return f, nil
	}
	return nil, fmt.Errorf("%w: expected at most one input file, got %d", errUsage, len(args))
}

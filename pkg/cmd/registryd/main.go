// Command registryd drives a vanity-name registry.Registry from a
// block-tagged command script, for local experimentation without a full
// chain runtime behind it.
//
// Usage:
//
//	registryd -script commands.txt
//	registryd -script - < commands.txt
//
// Flags:
//
//	-lock-id          lock identifier tag (max 8 bytes, default "vanity")
//	-register-period  blocks a commit or ownership stays valid (default 95)
//	-fund-to-lock     collateral locked per active commit (default 57)
//	-name-max-len     max encoded name length in bytes (default 64)
//	-script           path to a command script (- for stdin)
//	-log-format       event output format: text, json, or color (default "text")
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/vanitychain/registry/registry"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

// run is the testable entry point: it takes argv (without the program
// name), the script source, and an output writer, and returns a process
// exit code.
func run(args []string, stdin io.Reader, stdout io.Writer) int {
	cli, exit, code := parseFlags(args)
	if exit {
		return code
	}

	cfg := registry.Config{
		LockID:         registry.StringLockID(cli.LockID),
		RegisterPeriod: cli.RegisterPeriod,
		FundToLock:     cli.FundToLock,
		NameMaxLen:     int(cli.NameMaxLen),
	}

	clock := &manualClock{}
	r, err := registry.New(cfg, clock, registry.KeccakHasher{}, newMemCurrency(), newFormatterSink(cli.LogFormat, stdout))
	if err != nil {
		fmt.Fprintf(stdout, "registryd: invalid configuration: %v\n", err)
		return 1
	}

	var src io.Reader = stdin
	if cli.ScriptPath != "-" {
		f, err := os.Open(cli.ScriptPath)
		if err != nil {
			fmt.Fprintf(stdout, "registryd: %v\n", err)
			return 1
		}
		defer f.Close()
		src = f
	}

	if err := runScript(r, clock, src, stdout); err != nil {
		fmt.Fprintf(stdout, "registryd: %v\n", err)
		return 1
	}
	return 0
}

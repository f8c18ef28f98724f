package main

import (
	"flag"
	"fmt"
	"strconv"
)

// flagSet wraps flag.FlagSet with a Uint64Var backed by its own
// uint64Value flag.Value implementation.
type flagSet struct {
	*flag.FlagSet
}

func newCustomFlagSet(name string) *flagSet {
	return &flagSet{FlagSet: flag.NewFlagSet(name, flag.ContinueOnError)}
}

func (fs *flagSet) Uint64Var(p *uint64, name string, value uint64, usage string) {
	fs.FlagSet.Var(&uint64Value{p: p}, name, usage)
	*p = value
}

type uint64Value struct {
	p *uint64
}

func (v *uint64Value) String() string {
	if v.p == nil {
		return "0"
	}
	return strconv.FormatUint(*v.p, 10)
}

func (v *uint64Value) Set(s string) error {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid uint64 value %q", s)
	}
	*v.p = n
	return nil
}

// cliConfig holds the registry parameters and script path parsed from argv.
type cliConfig struct {
	LockID         string
	RegisterPeriod uint64
	FundToLock     uint64
	NameMaxLen     uint64
	ScriptPath     string
	LogFormat      string
}

// parseFlags parses args (excluding the program name). exit is true when
// the caller should stop (e.g. -h was given, or a parse error occurred);
// code is the process exit code to use in that case.
func parseFlags(args []string) (cfg cliConfig, exit bool, code int) {
	fs := newCustomFlagSet("registryd")
	lockID := fs.String("lock-id", "vanity", "lock identifier tag (max 8 bytes)")
	fs.Uint64Var(&cfg.RegisterPeriod, "register-period", 95, "blocks a commit or ownership stays valid")
	fs.Uint64Var(&cfg.FundToLock, "fund-to-lock", 57, "collateral locked per active commit")
	fs.Uint64Var(&cfg.NameMaxLen, "name-max-len", 64, "max encoded name length in bytes")
	script := fs.String("script", "", "path to a command script (- for stdin)")
	logFormat := fs.String("log-format", "text", "event output format: text, json, or color")

	if err := fs.Parse(args); err != nil {
		return cfg, true, 2
	}
	cfg.LockID = *lockID
	cfg.ScriptPath = *script
	cfg.LogFormat = *logFormat
	if cfg.ScriptPath == "" {
		fmt.Println("registryd: -script is required")
		return cfg, true, 2
	}
	switch cfg.LogFormat {
	case "text", "json", "color":
	default:
		fmt.Printf("registryd: unknown -log-format %q (want text, json, or color)\n", cfg.LogFormat)
		return cfg, true, 2
	}
	return cfg, false, 0
}

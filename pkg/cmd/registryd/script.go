package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vanitychain/registry/core/types"
	"github.com/vanitychain/registry/crypto"
	"github.com/vanitychain/registry/registry"
)

// accountOf derives a deterministic address for a human-readable script
// token, so test scripts can write "alice" and "bob" instead of hex.
func accountOf(token string) types.Address {
	h := crypto.Keccak256Hash([]byte("registryd-account:" + token))
	return types.BytesToAddress(h.Bytes()[:types.AddressLength])
}

// runScript reads line-oriented commands from src and drives r, writing one
// result line per command to out. Blank lines and lines starting with '#'
// are ignored.
//
// Commands:
//
//	block N                  advance the clock to block N and finalize
//	commit ACCT NAME         commit hash(ACCT, NAME) for ACCT
//	reveal ACCT NAME         reveal NAME for ACCT
//	renew ACCT NAME          renew NAME for ACCT
//	unregister ACCT NAME     release NAME for ACCT
func runScript(r *registry.Registry, clock *manualClock, src io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(src)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		cmd := fields[0]

		switch cmd {
		case "block":
			if len(fields) != 2 {
				return fmt.Errorf("line %d: block requires 1 argument", lineNo)
			}
			n, err := strconv.ParseUint(fields[1], 10, 64)
			if err != nil {
				return fmt.Errorf("line %d: invalid block number: %w", lineNo, err)
			}
			clock.n = n
			r.OnFinalize(n)
			fmt.Fprintf(out, "block %d finalized\n", n)

		case "commit", "reveal", "renew", "unregister":
			if len(fields) != 3 {
				return fmt.Errorf("line %d: %s requires 2 arguments", lineNo, cmd)
			}
			acctToken, nameToken := fields[1], fields[2]
			acct := accountOf(acctToken)
			name := types.NameFromString(nameToken)
			origin := registry.Signed(acct)

			var err error
			switch cmd {
			case "commit":
				err = r.Commit(origin, keccakCommit(acct, name))
			case "reveal":
				err = r.Reveal(origin, name)
			case "renew":
				err = r.Renew(origin, name)
			case "unregister":
				err = r.Unregister(origin, name)
			}
			if err != nil {
				fmt.Fprintf(out, "%s %s %s: error: %v\n", cmd, acctToken, nameToken, err)
			} else {
				fmt.Fprintf(out, "%s %s %s: ok\n", cmd, acctToken, nameToken)
			}

		default:
			return fmt.Errorf("line %d: unknown command %q", lineNo, cmd)
		}
	}
	return scanner.Err()
}

func keccakCommit(acct types.Address, name types.Name) types.Hash {
	return crypto.Keccak256Hash(acct.Bytes(), name.Encode())
}

// manualClock is a registry.Clock driven by the script's "block" commands.
type manualClock struct {
	n uint64
}

func (c *manualClock) Now() uint64 { return c.n }

package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/havannah-labs/hvn/hex"
	"github.com/havannah-labs/hvn/search"
	"github.com/havannah-labs/hvn/timer"
)

type solveCommand struct {
	size   int
	moves  string
	memMiB uint64
}

func (*solveCommand) Name() string     { return "solve" }
func (*solveCommand) Synopsis() string { return "Exhaustively solve a position with DFPN" }
func (*solveCommand) Usage() string {
	return `solve [-size N] [-moves a1,b2,...] [-mem MiB]

Prove the outcome of a position, played out from an empty board by the
given comma-separated move list.
`
}

func (c *solveCommand) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.size, "size", 4, "board side length")
	flags.StringVar(&c.moves, "moves", "", "comma-separated moves played so far")
	flags.Uint64Var(&c.memMiB, "mem", 256, "solver node-table memory limit, in MiB")
}

func (c *solveCommand) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b := hex.New(c.size)
	if c.moves != "" {
		for _, s := range strings.Split(c.moves, ",") {
			m, err := hex.ParseMove(s, c.size, hex.GridCoords)
			if err != nil {
				fmt.Println("bad move:", err)
				return subcommands.ExitUsageError
			}
			if !b.Move(m) {
				fmt.Println("illegal move:", s)
				return subcommands.ExitUsageError
			}
		}
	}

	var flag_ timer.Flag
	solver := search.NewDFPNSolver(c.memMiB)
	outcome, move := solver.Solve(b, &flag_)

	fmt.Printf("outcome: %s\n", outcome)
	if move != hex.Unknown {
		fmt.Printf("move: %s\n", hex.FormatMove(move, c.size, hex.GridCoords))
	}
	return subcommands.ExitSuccess
}

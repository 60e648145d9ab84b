package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/havannah-labs/hvn/hex"
)

type distsCommand struct {
	size  int
	moves string
}

func (*distsCommand) Name() string     { return "dists" }
func (*distsCommand) Synopsis() string { return "Print each player's lower-bound distance to a win" }
func (*distsCommand) Usage() string {
	return `dists [-size N] [-moves a1,b2,...]

For each player, reports the fewest additional stones they would need to
place, from their single best remaining cell, to complete a bridge or a
fork, routing around the opponent's stones. A lower number means that player is
closer to winning.
`
}

func (c *distsCommand) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.size, "size", 8, "board side length")
	flags.StringVar(&c.moves, "moves", "", "comma-separated moves played so far")
}

func (c *distsCommand) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b := hex.New(c.size)
	if c.moves != "" {
		for _, s := range strings.Split(c.moves, ",") {
			m, err := hex.ParseMove(s, c.size, hex.GridCoords)
			if err != nil || !b.Move(m) {
				fmt.Println("bad move:", s)
				return subcommands.ExitUsageError
			}
		}
	}

	lb := hex.NewLBDists(b.Size(), b.SizeD())
	lb.Run(b)

	var best [2]int32
	best[0], best[1] = 1<<30, 1<<30
	for y := 0; y < b.SizeD(); y++ {
		for x := b.LineStart(y); x < b.LineStart(y)+b.LineLen(y); x++ {
			if b.Get(x, y) != 0 {
				continue
			}
			for p := 0; p < 2; p++ {
				if d := lb.Get(b, x, y, p); d < best[p] {
					best[p] = d
				}
			}
		}
	}

	fmt.Printf("player1: %d\n", best[0])
	fmt.Printf("player2: %d\n", best[1])
	return subcommands.ExitSuccess
}

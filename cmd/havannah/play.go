package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"

	"github.com/havannah-labs/hvn/hex"
	"github.com/havannah-labs/hvn/search"
	"github.com/havannah-labs/hvn/timer"
)

type playCommand struct {
	size  int
	white string
	black string
	limit time.Duration
	depth int
}

func (*playCommand) Name() string     { return "play" }
func (*playCommand) Synopsis() string { return "Play Havannah from the command line" }
func (*playCommand) Usage() string {
	return `play [-size N] [-white human|ai] [-black human|ai]

Play Havannah on the command line against a human or the alpha-beta AI.
`
}

func (c *playCommand) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.size, "size", 8, "board side length")
	flags.StringVar(&c.white, "white", "human", "player1: human or ai")
	flags.StringVar(&c.black, "black", "ai", "player2: human or ai")
	flags.DurationVar(&c.limit, "limit", 10*time.Second, "ai time limit per move")
	flags.IntVar(&c.depth, "depth", 6, "ai search depth limit (exclusive: the deepest iteration is depth-1)")
}

func (c *playCommand) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b := hex.New(c.size)
	in := bufio.NewReader(os.Stdin)
	ab := search.NewAlphaBeta()

	for b.Result() == hex.Ongoing {
		fmt.Println(b.String())

		turn := b.ToPlay()
		kind := c.black
		if turn == 1 {
			kind = c.white
		}

		var m hex.Move
		if kind == "human" {
			var err error
			m, err = c.readHumanMove(in, b)
			if err != nil {
				log.Println(err)
				continue
			}
		} else {
			var flg timer.Flag
			dl := timer.Schedule(&flg, c.limit)
			_, best := ab.Solve(b, c.depth, &flg)
			dl.Cancel()
			m = best
			fmt.Printf("player%d plays %s\n", turn, hex.FormatMove(m, c.size, hex.GridCoords))
		}

		if !b.Move(m) {
			fmt.Println("illegal move, try again")
		}
	}

	fmt.Println(b.String())
	fmt.Printf("result: %s (%s)\n", b.Result(), b.WinKind())
	return subcommands.ExitSuccess
}

func (c *playCommand) readHumanMove(in *bufio.Reader, b *hex.Board) (hex.Move, error) {
	fmt.Printf("player%d> ", b.ToPlay())
	line, err := in.ReadString('\n')
	if err != nil {
		return hex.Unknown, err
	}
	return hex.ParseMove(strings.TrimSpace(line), c.size, hex.GridCoords)
}

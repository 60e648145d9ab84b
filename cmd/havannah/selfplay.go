package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/google/subcommands"

	"github.com/havannah-labs/hvn/gamelog"
	"github.com/havannah-labs/hvn/selfplay"
)

type selfplayCommand struct {
	size    int
	games   int
	threads int
	seed    int64
	epsilon float64
	depth   int
	limit   time.Duration
	db      string
	day     string
}

func (*selfplayCommand) Name() string     { return "selfplay" }
func (*selfplayCommand) Synopsis() string { return "Generate a self-play game corpus" }
func (*selfplayCommand) Usage() string {
	return `selfplay [-size N] [-games N] [-db path.sqlite]
`
}

func (c *selfplayCommand) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.size, "size", 6, "board side length")
	flags.IntVar(&c.games, "games", 100, "number of games to generate")
	flags.IntVar(&c.threads, "threads", 4, "number of concurrent workers")
	flags.Int64Var(&c.seed, "seed", 0, "random seed")
	flags.Float64Var(&c.epsilon, "epsilon", 0.2, "probability of a uniformly random move")
	flags.IntVar(&c.depth, "depth", 4, "alpha-beta search depth limit (exclusive: the deepest iteration is depth-1)")
	flags.DurationVar(&c.limit, "limit", 5*time.Second, "alpha-beta time limit per move")
	flags.StringVar(&c.db, "db", "selfplay.db", "output sqlite database")
	flags.StringVar(&c.day, "day", time.Now().Format("2006-01-02"), "day label recorded with each game")
}

func (c *selfplayCommand) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	repo, err := gamelog.Open(c.db)
	if err != nil {
		log.Println("open:", err)
		return subcommands.ExitFailure
	}
	defer repo.Close()

	r := selfplay.New(selfplay.Config{
		Size:    c.size,
		Games:   c.games,
		Threads: c.threads,
		Seed:    c.seed,
		Epsilon: c.epsilon,
		Depth:   c.depth,
		Limit:   c.limit,
	}, repo)

	if err := r.Run(ctx, c.day); err != nil {
		log.Println("selfplay:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// Command havannah is the command-line front end for the board, solver,
// self-play, and logging packages, grounded on how the teacher corpus
// wires google/subcommands across its own cmd/internal/* commands.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&playCommand{}, "")
	subcommands.Register(&solveCommand{}, "")
	subcommands.Register(&selfplayCommand{}, "")
	subcommands.Register(&serveCommand{}, "")
	subcommands.Register(&distsCommand{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}

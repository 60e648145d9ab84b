package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"

	"github.com/google/subcommands"
	"google.golang.org/grpc"

	"github.com/havannah-labs/hvn/rpc"
	"github.com/havannah-labs/hvn/rpc/havannahpb"
)

type serveCommand struct {
	port int
}

func (*serveCommand) Name() string     { return "serve" }
func (*serveCommand) Synopsis() string { return "Serve the Havannah gRPC analysis service" }
func (*serveCommand) Usage() string {
	return `serve [-port N]
`
}

func (c *serveCommand) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.port, "port", 55440, "bind port")
}

func (c *serveCommand) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", c.port))
	if err != nil {
		log.Println("listen:", err)
		return subcommands.ExitFailure
	}

	log.Printf("listening on port %d", c.port)
	grpcServer := grpc.NewServer()
	havannahpb.RegisterHavannahServer(grpcServer, rpc.New())
	grpcServer.Serve(lis)

	return subcommands.ExitSuccess
}

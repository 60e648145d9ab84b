// Command havannah-server is a standalone gRPC analysis server, grounded
// directly on cmd/taktician-server/main.go.
package main

import (
	"flag"
	"fmt"
	"log"
	"net"

	"google.golang.org/grpc"

	"github.com/havannah-labs/hvn/rpc"
	"github.com/havannah-labs/hvn/rpc/havannahpb"
)

func main() {
	var (
		port = flag.Int("port", 55440, "bind port")
	)

	flag.Parse()
	log.Printf("Listening on port %d", *port)
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", *port))
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}
	grpcServer := grpc.NewServer()
	havannahpb.RegisterHavannahServer(grpcServer, rpc.New())

	grpcServer.Serve(lis)
}

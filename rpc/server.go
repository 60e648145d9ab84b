// Package rpc exposes the alpha-beta and DFPN solvers over gRPC, grounded
// on cmd/taktician-server/main.go's single-method Analyze server.
package rpc

import (
	"fmt"
	"time"

	"golang.org/x/net/context"

	"github.com/havannah-labs/hvn/hex"
	"github.com/havannah-labs/hvn/rpc/havannahpb"
	"github.com/havannah-labs/hvn/search"
	"github.com/havannah-labs/hvn/timer"
)

func msToDuration(ms int32) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// Server implements havannahpb.HavannahServer.
type Server struct {
	havannahpb.UnimplementedHavannahServer
}

func New() *Server {
	return &Server{}
}

func replay(size int, moves []string) (*hex.Board, error) {
	b := hex.New(size)
	for i, s := range moves {
		m, err := hex.ParseMove(s, size, hex.GridCoords)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
		if !b.Move(m) {
			return nil, fmt.Errorf("move %d (%s) illegal", i, s)
		}
	}
	return b, nil
}

// Analyze runs a fresh iterative-deepening alpha-beta search and returns
// its best move.
func (s *Server) Analyze(ctx context.Context, req *havannahpb.AnalyzeRequest) (*havannahpb.AnalyzeResponse, error) {
	b, err := replay(int(req.Size), req.Moves)
	if err != nil {
		return nil, err
	}

	depth := int(req.Depth)
	if depth <= 0 {
		depth = 4
	}

	var flag timer.Flag
	if ms := req.TimeLimit; ms > 0 {
		dl := timer.Schedule(&flag, msToDuration(ms))
		defer dl.Cancel()
	}

	ab := search.NewAlphaBeta()
	value, move := ab.Solve(b, depth, &flag)

	return &havannahpb.AnalyzeResponse{
		Move:  hex.FormatMove(move, b.Size(), hex.GridCoords),
		Value: int32(value),
		Nodes: ab.Stats.Nodes,
	}, nil
}

// Solve exhaustively proves the position with DFPN, seeded by alpha-beta
// probes at each expanded leaf.
func (s *Server) Solve(ctx context.Context, req *havannahpb.SolveRequest) (*havannahpb.SolveResponse, error) {
	b, err := replay(int(req.Size), req.Moves)
	if err != nil {
		return nil, err
	}

	memLimit := req.MemLimitMb
	if memLimit == 0 {
		memLimit = 256
	}

	var flag timer.Flag
	solver := search.NewDFPNSolver(memLimit)
	outcome, move := solver.Solve(b, &flag)

	return &havannahpb.SolveResponse{
		Outcome: outcome.String(),
		Move:    hex.FormatMove(move, b.Size(), hex.GridCoords),
	}, nil
}

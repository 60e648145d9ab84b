// Code generated by protoc-gen-go, by hand for this repository: there is no
// .proto/protoc step here, just the same struct shape protoc-gen-go v1.2
// would have produced, grounded on pb/tak/proto's message shapes as
// consumed by cmd/taktician-server/main.go.

package havannahpb

import (
	proto "github.com/golang/protobuf/proto"
)

// AnalyzeRequest asks the server to search a position, described as a board
// size and the sequence of A1-style moves played from an empty board.
type AnalyzeRequest struct {
	Size      int32    `protobuf:"varint,1,opt,name=size" json:"size,omitempty"`
	Moves     []string `protobuf:"bytes,2,rep,name=moves" json:"moves,omitempty"`
	Depth     int32    `protobuf:"varint,3,opt,name=depth" json:"depth,omitempty"`
	TimeLimit int32    `protobuf:"varint,4,opt,name=time_limit_ms,json=timeLimitMs" json:"time_limit_ms,omitempty"`
}

func (m *AnalyzeRequest) Reset()         { *m = AnalyzeRequest{} }
func (m *AnalyzeRequest) String() string { return proto.CompactTextString(m) }
func (*AnalyzeRequest) ProtoMessage()    {}

func (m *AnalyzeRequest) GetSize() int32 {
	if m != nil {
		return m.Size
	}
	return 0
}

func (m *AnalyzeRequest) GetMoves() []string {
	if m != nil {
		return m.Moves
	}
	return nil
}

func (m *AnalyzeRequest) GetDepth() int32 {
	if m != nil {
		return m.Depth
	}
	return 0
}

// AnalyzeResponse is the best move the alpha-beta solver found, along with
// its proven-or-heuristic value and the node count spent finding it.
type AnalyzeResponse struct {
	Move  string `protobuf:"bytes,1,opt,name=move" json:"move,omitempty"`
	Value int32  `protobuf:"varint,2,opt,name=value" json:"value,omitempty"`
	Nodes uint64 `protobuf:"varint,3,opt,name=nodes" json:"nodes,omitempty"`
}

func (m *AnalyzeResponse) Reset()         { *m = AnalyzeResponse{} }
func (m *AnalyzeResponse) String() string { return proto.CompactTextString(m) }
func (*AnalyzeResponse) ProtoMessage()    {}

func (m *AnalyzeResponse) GetMove() string {
	if m != nil {
		return m.Move
	}
	return ""
}

// SolveRequest asks the server to exhaustively solve a position with DFPN.
type SolveRequest struct {
	Size       int32    `protobuf:"varint,1,opt,name=size" json:"size,omitempty"`
	Moves      []string `protobuf:"bytes,2,rep,name=moves" json:"moves,omitempty"`
	MemLimitMb uint64   `protobuf:"varint,3,opt,name=mem_limit_mb,json=memLimitMb" json:"mem_limit_mb,omitempty"`
}

func (m *SolveRequest) Reset()         { *m = SolveRequest{} }
func (m *SolveRequest) String() string { return proto.CompactTextString(m) }
func (*SolveRequest) ProtoMessage()    {}

// SolveResponse names the proven outcome and, when the position is a
// proven win, the move that secures it.
type SolveResponse struct {
	Outcome string `protobuf:"bytes,1,opt,name=outcome" json:"outcome,omitempty"`
	Move    string `protobuf:"bytes,2,opt,name=move" json:"move,omitempty"`
}

func (m *SolveResponse) Reset()         { *m = SolveResponse{} }
func (m *SolveResponse) String() string { return proto.CompactTextString(m) }
func (*SolveResponse) ProtoMessage()    {}

func init() {
	proto.RegisterType((*AnalyzeRequest)(nil), "havannah.AnalyzeRequest")
	proto.RegisterType((*AnalyzeResponse)(nil), "havannah.AnalyzeResponse")
	proto.RegisterType((*SolveRequest)(nil), "havannah.SolveRequest")
	proto.RegisterType((*SolveResponse)(nil), "havannah.SolveResponse")
}

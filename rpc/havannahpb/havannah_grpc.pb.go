// Code generated by protoc-gen-go, by hand for this repository — see
// havannah.pb.go. Grounded on the client/server shape
// cmd/taktician-server/main.go consumes (pb.RegisterTakticianServer,
// pb.AnalyzeRequest/AnalyzeResponse) for a two-method unary service.

package havannahpb

import (
	context "golang.org/x/net/context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// HavannahClient is the client API for the Havannah service.
type HavannahClient interface {
	Analyze(ctx context.Context, in *AnalyzeRequest, opts ...grpc.CallOption) (*AnalyzeResponse, error)
	Solve(ctx context.Context, in *SolveRequest, opts ...grpc.CallOption) (*SolveResponse, error)
}

type havannahClient struct {
	cc *grpc.ClientConn
}

func NewHavannahClient(cc *grpc.ClientConn) HavannahClient {
	return &havannahClient{cc}
}

func (c *havannahClient) Analyze(ctx context.Context, in *AnalyzeRequest, opts ...grpc.CallOption) (*AnalyzeResponse, error) {
	out := new(AnalyzeResponse)
	err := c.cc.Invoke(ctx, "/havannah.Havannah/Analyze", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *havannahClient) Solve(ctx context.Context, in *SolveRequest, opts ...grpc.CallOption) (*SolveResponse, error) {
	out := new(SolveResponse)
	err := c.cc.Invoke(ctx, "/havannah.Havannah/Solve", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// HavannahServer is the server API for the Havannah service.
type HavannahServer interface {
	Analyze(context.Context, *AnalyzeRequest) (*AnalyzeResponse, error)
	Solve(context.Context, *SolveRequest) (*SolveResponse, error)
}

// UnimplementedHavannahServer can be embedded to satisfy HavannahServer
// while only overriding the methods a particular server cares about.
type UnimplementedHavannahServer struct{}

func (*UnimplementedHavannahServer) Analyze(context.Context, *AnalyzeRequest) (*AnalyzeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Analyze not implemented")
}

func (*UnimplementedHavannahServer) Solve(context.Context, *SolveRequest) (*SolveResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Solve not implemented")
}

func RegisterHavannahServer(s *grpc.Server, srv HavannahServer) {
	s.RegisterService(&_Havannah_serviceDesc, srv)
}

func _Havannah_Analyze_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnalyzeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HavannahServer).Analyze(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/havannah.Havannah/Analyze",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HavannahServer).Analyze(ctx, req.(*AnalyzeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Havannah_Solve_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SolveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HavannahServer).Solve(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/havannah.Havannah/Solve",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HavannahServer).Solve(ctx, req.(*SolveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _Havannah_serviceDesc = grpc.ServiceDesc{
	ServiceName: "havannah.Havannah",
	HandlerType: (*HavannahServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Analyze",
			Handler:    _Havannah_Analyze_Handler,
		},
		{
			MethodName: "Solve",
			Handler:    _Havannah_Solve_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "havannah.proto",
}

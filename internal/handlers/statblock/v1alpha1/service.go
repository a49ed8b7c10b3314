package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully-qualified gRPC service name
const ServiceName = "statblock.api.v1alpha1.StatBlockService"

// Full method names
const (
	StatBlockService_ParseStatBlock_FullMethodName = "/" + ServiceName + "/ParseStatBlock"
	StatBlockService_GetParseResult_FullMethodName = "/" + ServiceName + "/GetParseResult"
	StatBlockService_SetOverride_FullMethodName    = "/" + ServiceName + "/SetOverride"
	StatBlockService_ExportRecord_FullMethodName   = "/" + ServiceName + "/ExportRecord"
	StatBlockService_CrossCheck_FullMethodName     = "/" + ServiceName + "/CrossCheck"
)

// StatBlockServiceServer is the server API for the stat block service.
// Requests and responses are well-known protobuf types so no generated
// stubs are needed; field names are documented on each handler method.
type StatBlockServiceServer interface {
	ParseStatBlock(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetParseResult(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	SetOverride(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ExportRecord(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CrossCheck(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// UnimplementedStatBlockServiceServer can be embedded for forward compatibility
type UnimplementedStatBlockServiceServer struct{}

func (UnimplementedStatBlockServiceServer) ParseStatBlock(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ParseStatBlock not implemented")
}

func (UnimplementedStatBlockServiceServer) GetParseResult(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetParseResult not implemented")
}

func (UnimplementedStatBlockServiceServer) SetOverride(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method SetOverride not implemented")
}

func (UnimplementedStatBlockServiceServer) ExportRecord(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportRecord not implemented")
}

func (UnimplementedStatBlockServiceServer) CrossCheck(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method CrossCheck not implemented")
}

// RegisterStatBlockServiceServer registers srv with s
func RegisterStatBlockServiceServer(s grpc.ServiceRegistrar, srv StatBlockServiceServer) {
	s.RegisterService(&StatBlockService_ServiceDesc, srv)
}

func _StatBlockService_ParseStatBlock_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StatBlockServiceServer).ParseStatBlock(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: StatBlockService_ParseStatBlock_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StatBlockServiceServer).ParseStatBlock(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _StatBlockService_GetParseResult_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StatBlockServiceServer).GetParseResult(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: StatBlockService_GetParseResult_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StatBlockServiceServer).GetParseResult(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _StatBlockService_SetOverride_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StatBlockServiceServer).SetOverride(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: StatBlockService_SetOverride_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StatBlockServiceServer).SetOverride(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _StatBlockService_ExportRecord_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StatBlockServiceServer).ExportRecord(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: StatBlockService_ExportRecord_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StatBlockServiceServer).ExportRecord(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _StatBlockService_CrossCheck_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StatBlockServiceServer).CrossCheck(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: StatBlockService_CrossCheck_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StatBlockServiceServer).CrossCheck(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// StatBlockService_ServiceDesc is the grpc.ServiceDesc for the stat block service
var StatBlockService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StatBlockServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ParseStatBlock", Handler: _StatBlockService_ParseStatBlock_Handler},
		{MethodName: "GetParseResult", Handler: _StatBlockService_GetParseResult_Handler},
		{MethodName: "SetOverride", Handler: _StatBlockService_SetOverride_Handler},
		{MethodName: "ExportRecord", Handler: _StatBlockService_ExportRecord_Handler},
		{MethodName: "CrossCheck", Handler: _StatBlockService_CrossCheck_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "statblock/api/v1alpha1/statblock.proto",
}

// StatBlockServiceClient is the client API for the stat block service
type StatBlockServiceClient interface {
	ParseStatBlock(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetParseResult(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	SetOverride(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ExportRecord(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	CrossCheck(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type statBlockServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewStatBlockServiceClient creates a client bound to cc
func NewStatBlockServiceClient(cc grpc.ClientConnInterface) StatBlockServiceClient {
	return &statBlockServiceClient{cc}
}

func (c *statBlockServiceClient) ParseStatBlock(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, StatBlockService_ParseStatBlock_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *statBlockServiceClient) GetParseResult(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, StatBlockService_GetParseResult_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *statBlockServiceClient) SetOverride(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, StatBlockService_SetOverride_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *statBlockServiceClient) ExportRecord(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, StatBlockService_ExportRecord_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *statBlockServiceClient) CrossCheck(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, StatBlockService_CrossCheck_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "oripheon.avatar.v1alpha1.AvatarService"

// Method names
const (
	MethodGenerate       = "Generate"
	MethodReroll         = "Reroll"
	MethodGetAvatar      = "GetAvatar"
	MethodListAvatars    = "ListAvatars"
	MethodDeleteAvatar   = "DeleteAvatar"
	MethodNameCandidates = "NameCandidates"
	MethodExportAvatar   = "ExportAvatar"
	MethodCatalog        = "Catalog"
)

// AvatarServiceServer is the server API. Every message is a
// google.protobuf.Struct whose fields follow the avatar JSON contract.
type AvatarServiceServer interface {
	Generate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Reroll(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetAvatar(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListAvatars(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteAvatar(context.Context, *structpb.Struct) (*structpb.Struct, error)
	NameCandidates(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ExportAvatar(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Catalog(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type serverMethod func(AvatarServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(name string, call serverMethod) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(AvatarServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(AvatarServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc describes AvatarService for grpc.Server registration
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AvatarServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler(MethodGenerate, AvatarServiceServer.Generate),
		unaryHandler(MethodReroll, AvatarServiceServer.Reroll),
		unaryHandler(MethodGetAvatar, AvatarServiceServer.GetAvatar),
		unaryHandler(MethodListAvatars, AvatarServiceServer.ListAvatars),
		unaryHandler(MethodDeleteAvatar, AvatarServiceServer.DeleteAvatar),
		unaryHandler(MethodNameCandidates, AvatarServiceServer.NameCandidates),
		unaryHandler(MethodExportAvatar, AvatarServiceServer.ExportAvatar),
		unaryHandler(MethodCatalog, AvatarServiceServer.Catalog),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "oripheon/avatar/v1alpha1/avatar.proto",
}

// RegisterAvatarServiceServer registers the handler with a gRPC server
func RegisterAvatarServiceServer(s grpc.ServiceRegistrar, srv AvatarServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// AvatarServiceClient is the client API for AvatarService
type AvatarServiceClient interface {
	Call(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type avatarServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAvatarServiceClient wraps a connection
func NewAvatarServiceClient(cc grpc.ClientConnInterface) AvatarServiceClient {
	return &avatarServiceClient{cc: cc}
}

// Call invokes one unary method by its short name, e.g. "Generate"
func (c *avatarServiceClient) Call(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	if in == nil {
		in = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

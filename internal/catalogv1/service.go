// Package catalogv1 exposes the catalog over gRPC. Messages are
// google.protobuf.Struct values carrying the same parameter names and
// response envelope as the HTTP API, so no generated stubs are needed.
package catalogv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "cakeapp.catalog.v1.CatalogService"

const (
	ListProductsMethod   = "/" + ServiceName + "/ListProducts"
	ListCategoriesMethod = "/" + ServiceName + "/ListCategories"
	ListChefsMethod      = "/" + ServiceName + "/ListChefs"
)

type ProductServer interface {
	ListProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

type CategoryServer interface {
	ListCategories(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

type ChefServer interface {
	ListChefs(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

type CatalogServiceServer interface {
	ProductServer
	CategoryServer
	ChefServer
}

// Server joins the per entity handlers into one service implementation.
type Server struct {
	ProductServer
	CategoryServer
	ChefServer
}

func NewServer(p ProductServer, c CategoryServer, ch ChefServer) *Server {
	return &Server{ProductServer: p, CategoryServer: c, ChefServer: ch}
}

func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogService_ServiceDesc, srv)
}

func unaryHandler(method string, call func(CatalogServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CatalogServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(CatalogServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var CatalogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListProducts",
			Handler:    unaryHandler(ListProductsMethod, CatalogServiceServer.ListProducts),
		},
		{
			MethodName: "ListCategories",
			Handler:    unaryHandler(ListCategoriesMethod, CatalogServiceServer.ListCategories),
		},
		{
			MethodName: "ListChefs",
			Handler:    unaryHandler(ListChefsMethod, CatalogServiceServer.ListChefs),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "cakeapp/catalog/v1/catalog.proto",
}

// CatalogServiceClient calls the service over any client connection.
type CatalogServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCatalogServiceClient(cc grpc.ClientConnInterface) *CatalogServiceClient {
	return &CatalogServiceClient{cc: cc}
}

func (c *CatalogServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CatalogServiceClient) ListProducts(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ListProductsMethod, in, opts...)
}

func (c *CatalogServiceClient) ListCategories(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ListCategoriesMethod, in, opts...)
}

func (c *CatalogServiceClient) ListChefs(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ListChefsMethod, in, opts...)
}

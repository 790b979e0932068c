package handler

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "omnipos.purchase.v1.PurchasedProductService"

const (
	listPurchasedProductsMethod = "/" + ServiceName + "/ListPurchasedProducts"
	getPurchasedProductMethod   = "/" + ServiceName + "/GetPurchasedProduct"
)

type PurchasedProductServiceServer interface {
	ListPurchasedProducts(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetPurchasedProduct(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
}

var PurchasedProductServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PurchasedProductServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListPurchasedProducts",
			Handler:    listPurchasedProductsHandler,
		},
		{
			MethodName: "GetPurchasedProduct",
			Handler:    getPurchasedProductHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "omnipos/purchase/v1/purchase.proto",
}

func RegisterPurchasedProductServiceServer(s grpc.ServiceRegistrar, srv PurchasedProductServiceServer) {
	s.RegisterService(&PurchasedProductServiceDesc, srv)
}

func listPurchasedProductsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PurchasedProductServiceServer).ListPurchasedProducts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: listPurchasedProductsMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PurchasedProductServiceServer).ListPurchasedProducts(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func getPurchasedProductHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PurchasedProductServiceServer).GetPurchasedProduct(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: getPurchasedProductMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PurchasedProductServiceServer).GetPurchasedProduct(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

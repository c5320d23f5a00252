package grpc

import (
	"context"

	"github.com/cp25sy5-modjot/helpers-service/internal/domain"
	"google.golang.org/grpc"
)

const ServiceName = "helpers.v1.HelperService"

// HelperServiceServer is the server side of helpers.v1.HelperService.
type HelperServiceServer interface {
	Check(context.Context, *domain.HealthCheckRequest) (*domain.HealthCheckResponse, error)
	ParseTime(context.Context, *domain.ParseTimeRequest) (*domain.ParseTimeResponse, error)
	SumTimes(context.Context, *domain.SumTimesRequest) (*domain.SumTimesResponse, error)
	FormatTime(context.Context, *domain.FormatTimeRequest) (*domain.FormattedResponse, error)
	ParseDate(context.Context, *domain.ParseDateRequest) (*domain.ParseDateResponse, error)
	FormatDate(context.Context, *domain.FormatDateRequest) (*domain.FormattedResponse, error)
	FormatCurrency(context.Context, *domain.FormatCurrencyRequest) (*domain.FormattedResponse, error)
	SumNumbers(context.Context, *domain.SumNumbersRequest) (*domain.SumNumbersResponse, error)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*HelperServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Check", HelperServiceServer.Check),
		unary("ParseTime", HelperServiceServer.ParseTime),
		unary("SumTimes", HelperServiceServer.SumTimes),
		unary("FormatTime", HelperServiceServer.FormatTime),
		unary("ParseDate", HelperServiceServer.ParseDate),
		unary("FormatDate", HelperServiceServer.FormatDate),
		unary("FormatCurrency", HelperServiceServer.FormatCurrency),
		unary("SumNumbers", HelperServiceServer.SumNumbers),
	},
}

// RegisterHelperServer registers the helper service. Its messages are Go
// structs carried by the json codec, so there is no descriptor to serve over
// reflection and none is registered.
func RegisterHelperServer(s *grpc.Server, impl HelperServiceServer) {
	s.RegisterService(&serviceDesc, impl)
}

func unary[Req, Resp any](name string, call func(HelperServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(HelperServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(HelperServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

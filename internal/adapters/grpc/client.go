package grpc

import (
	"context"

	"github.com/cp25sy5-modjot/helpers-service/internal/domain"
	"google.golang.org/grpc"
)

// Client calls helpers.v1.HelperService over any connection, always
// with the JSON codec.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client { return &Client{cc: cc} }

func (c *Client) Check(ctx context.Context, in *domain.HealthCheckRequest) (*domain.HealthCheckResponse, error) {
	return invoke[domain.HealthCheckResponse](ctx, c.cc, "Check", in)
}

func (c *Client) ParseTime(ctx context.Context, in *domain.ParseTimeRequest) (*domain.ParseTimeResponse, error) {
	return invoke[domain.ParseTimeResponse](ctx, c.cc, "ParseTime", in)
}

func (c *Client) SumTimes(ctx context.Context, in *domain.SumTimesRequest) (*domain.SumTimesResponse, error) {
	return invoke[domain.SumTimesResponse](ctx, c.cc, "SumTimes", in)
}

func (c *Client) FormatTime(ctx context.Context, in *domain.FormatTimeRequest) (*domain.FormattedResponse, error) {
	return invoke[domain.FormattedResponse](ctx, c.cc, "FormatTime", in)
}

func (c *Client) ParseDate(ctx context.Context, in *domain.ParseDateRequest) (*domain.ParseDateResponse, error) {
	return invoke[domain.ParseDateResponse](ctx, c.cc, "ParseDate", in)
}

func (c *Client) FormatDate(ctx context.Context, in *domain.FormatDateRequest) (*domain.FormattedResponse, error) {
	return invoke[domain.FormattedResponse](ctx, c.cc, "FormatDate", in)
}

func (c *Client) FormatCurrency(ctx context.Context, in *domain.FormatCurrencyRequest) (*domain.FormattedResponse, error) {
	return invoke[domain.FormattedResponse](ctx, c.cc, "FormatCurrency", in)
}

func (c *Client) SumNumbers(ctx context.Context, in *domain.SumNumbersRequest) (*domain.SumNumbersResponse, error) {
	return invoke[domain.SumNumbersResponse](ctx, c.cc, "SumNumbers", in)
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any) (*Resp, error) {
	out := new(Resp)
	err := cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, grpc.CallContentSubtype(CodecName))
	if err != nil {
		return nil, err
	}
	return out, nil
}

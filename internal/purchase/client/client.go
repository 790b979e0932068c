// Package client is the caller side of the purchased product service. It
// validates filters locally before any request leaves the process.
package client

import (
	"context"

	"github.com/fekuna/omnipos-purchase-service/internal/apierr"
	"github.com/fekuna/omnipos-purchase-service/internal/auth"
	"github.com/fekuna/omnipos-purchase-service/internal/purchase/handler"
	"github.com/fekuna/omnipos-purchase-service/internal/query"
	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	listMethod = "/" + handler.ServiceName + "/ListPurchasedProducts"
	getMethod  = "/" + handler.ServiceName + "/GetPurchasedProduct"
)

type Client struct {
	cc grpc.ClientConnInterface
}

func New(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

type ListResult struct {
	Products []map[string]any
	Total    int
}

// ListPurchasedProducts validates filters and sends them as the request's
// "filters" object. Unknown keys fail before the call is made.
func (c *Client) ListPurchasedProducts(ctx context.Context, userID string, filters map[string]any, page, pageSize int) (*ListResult, error) {
	params, err := query.NewPurchasedProductParams(filters)
	if err != nil {
		return nil, err
	}

	req, err := EncodeListRequest(params, page, pageSize)
	if err != nil {
		return nil, err
	}

	out := new(structpb.Struct)
	if err := c.cc.Invoke(auth.OutgoingWithUserID(ctx, userID), listMethod, req, out); err != nil {
		return nil, err
	}

	res := &ListResult{Total: int(out.GetFields()["total"].GetNumberValue())}
	for _, v := range out.GetFields()["products"].GetListValue().GetValues() {
		res.Products = append(res.Products, v.GetStructValue().AsMap())
	}
	return res, nil
}

func (c *Client) GetPurchasedProduct(ctx context.Context, userID, id string) (map[string]any, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(auth.OutgoingWithUserID(ctx, userID), getMethod, wrapperspb.String(id), out); err != nil {
		return nil, err
	}
	return out.AsMap(), nil
}

// EncodeListRequest converts validated params into the list request message.
// String slices are widened to []any, the only list form structpb accepts.
func EncodeListRequest(params *query.PurchasedProductParams, page, pageSize int) (*structpb.Struct, error) {
	filters := make(map[string]any, len(params.ParameterDict()))
	for k, v := range params.ParameterDict() {
		if ss, ok := v.([]string); ok {
			list := make([]any, len(ss))
			for i, s := range ss {
				list[i] = s
			}
			v = list
		}
		if _, err := structpb.NewValue(v); err != nil {
			return nil, &apierr.IllegalParameterError{Key: k, Value: v, Reason: err.Error()}
		}
		filters[k] = v
	}

	req, err := structpb.NewStruct(map[string]any{
		"filters":   filters,
		"page":      page,
		"page_size": pageSize,
	})
	return req, errors.Wrap(err, "encode list request")
}

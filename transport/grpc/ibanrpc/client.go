package ibanrpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client { return &Client{cc: cc} }

func (c *Client) Validate(ctx context.Context, value string, opts ...grpc.CallOption) (*structpb.Value, error) {
	out := new(structpb.Value)
	if err := c.cc.Invoke(ctx, MethodValidate, wrapperspb.String(value), out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Check(ctx context.Context, value string, opts ...grpc.CallOption) error {
	return c.cc.Invoke(ctx, MethodCheck, wrapperspb.String(value), new(emptypb.Empty), opts...)
}

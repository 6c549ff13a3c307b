// Package ibanrpc serves IBAN validation over gRPC using protobuf well-known
// types, so no generated stubs are needed.
//
//	iban.v1.IBANService/Validate (google.protobuf.StringValue) returns (google.protobuf.Value)
//	iban.v1.IBANService/Check    (google.protobuf.StringValue) returns (google.protobuf.Empty)
package ibanrpc

import (
	"context"
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/vortex-fintech/go-iban/errors"
	"github.com/vortex-fintech/go-iban/iban"
	"github.com/vortex-fintech/go-iban/observe"
)

const (
	ServiceName    = "iban.v1.IBANService"
	MethodValidate = "/" + ServiceName + "/Validate"
	MethodCheck    = "/" + ServiceName + "/Check"
)

type IBANServer interface {
	Validate(context.Context, *wrapperspb.StringValue) (*structpb.Value, error)
	Check(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
}

type Service struct {
	v *observe.Validator
}

func NewService(v *observe.Validator) *Service {
	if v == nil {
		v = observe.New(nil)
	}
	return &Service{v: v}
}

// Validate returns the result wire shape as a JSON value; null when the
// input is blank.
func (s *Service) Validate(ctx context.Context, in *wrapperspb.StringValue) (*structpb.Value, error) {
	return toValue(s.v.ValidateTextContext(ctx, in.GetValue()))
}

// Check fails with InvalidArgument and a field violation on "value" unless
// the input is a valid IBAN.
func (s *Service) Check(ctx context.Context, in *wrapperspb.StringValue) (*emptypb.Empty, error) {
	res := s.v.ValidateTextContext(ctx, in.GetValue())
	if e, failed := errors.FromIBAN("value", res); failed {
		return nil, e
	}
	return &emptypb.Empty{}, nil
}

func toValue(res iban.Result) (*structpb.Value, error) {
	b, err := json.Marshal(res)
	if err != nil {
		return nil, err
	}
	out := &structpb.Value{}
	if err := protojson.Unmarshal(b, out); err != nil {
		return nil, err
	}
	return out, nil
}

func Register(r grpc.ServiceRegistrar, srv IBANServer) {
	r.RegisterService(&serviceDesc, srv)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*IBANServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Validate", Handler: validateHandler},
		{MethodName: "Check", Handler: checkHandler},
	},
	Streams: []grpc.StreamDesc{},
}

func validateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IBANServer).Validate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodValidate}
	return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
		return srv.(IBANServer).Validate(ctx, req.(*wrapperspb.StringValue))
	})
}

func checkHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IBANServer).Check(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MethodCheck}
	return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
		return srv.(IBANServer).Check(ctx, req.(*wrapperspb.StringValue))
	})
}

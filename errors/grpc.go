package errors

import (
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
)

// BadRequest has no reason slot, so violation reasons ride in ErrorInfo
// metadata under this prefix and are folded back by FromGRPC.
const violationReasonMetadataPrefix = "_errors.violation_reason."

// ToGRPC encodes the response as a status carrying ErrorInfo and, for
// InvalidArgument, BadRequest field violations.
func (e ErrorResponse) ToGRPC() error {
	var details []protoadapt.MessageV1
	if info := e.errorInfo(); info != nil {
		details = append(details, info)
	}
	if br := e.badRequest(); br != nil {
		details = append(details, br)
	}

	st := status.New(e.Code, e.Message)
	if len(details) > 0 {
		if withDetails, err := st.WithDetails(details...); err == nil {
			st = withDetails
		}
	}
	return st.Err()
}

func (e ErrorResponse) errorInfo() *errdetails.ErrorInfo {
	meta := cloneDetails(e.Details)
	for _, v := range e.Violations {
		if v.Field == "" || v.Reason == "" {
			continue
		}
		if meta == nil {
			meta = make(map[string]string, len(e.Violations))
		}
		meta[violationReasonMetadataPrefix+v.Field] = v.Reason
	}
	if e.Reason == "" && e.Domain == "" && len(meta) == 0 {
		return nil
	}
	return &errdetails.ErrorInfo{Reason: string(e.Reason), Domain: e.Domain, Metadata: meta}
}

func (e ErrorResponse) badRequest() *errdetails.BadRequest {
	if e.Code != codes.InvalidArgument || len(e.Violations) == 0 {
		return nil
	}
	fvs := make([]*errdetails.BadRequest_FieldViolation, len(e.Violations))
	for i, v := range e.Violations {
		desc := v.Description
		if desc == "" {
			desc = v.Reason
		}
		fvs[i] = &errdetails.BadRequest_FieldViolation{Field: v.Field, Description: desc}
	}
	return &errdetails.BadRequest{FieldViolations: fvs}
}

// FromGRPC rebuilds an ErrorResponse from a status error. Non-status errors
// become Unknown.
func FromGRPC(err error) ErrorResponse {
	st, ok := status.FromError(err)
	if !ok {
		return Unknown()
	}

	out := New(st.Message(), st.Code(), nil)
	reasons := map[string]string{}
	for _, d := range st.Details() {
		switch x := d.(type) {
		case *errdetails.ErrorInfo:
			out = out.applyErrorInfo(x, reasons)
		case *errdetails.BadRequest:
			out = out.WithViolations(violationsOf(x))
		}
	}

	for i, v := range out.Violations {
		if r, ok := reasons[v.Field]; ok {
			out.Violations[i].Reason = r
		}
	}
	return out
}

// applyErrorInfo copies reason, domain and plain metadata into e and moves
// prefixed violation reasons into reasons.
func (e ErrorResponse) applyErrorInfo(info *errdetails.ErrorInfo, reasons map[string]string) ErrorResponse {
	if r := info.GetReason(); r != "" {
		e.Reason = Reason(r)
	}
	if d := info.GetDomain(); d != "" {
		e.Domain = d
	}
	plain := map[string]string{}
	for k, v := range info.GetMetadata() {
		field, isReason := strings.CutPrefix(k, violationReasonMetadataPrefix)
		switch {
		case isReason && field != "":
			reasons[field] = v
		case !isReason:
			plain[k] = v
		}
	}
	return e.WithDetails(plain)
}

func violationsOf(br *errdetails.BadRequest) []FieldViolation {
	out := make([]FieldViolation, 0, len(br.GetFieldViolations()))
	for _, fv := range br.GetFieldViolations() {
		out = append(out, FieldViolation{Field: fv.GetField(), Description: fv.GetDescription()})
	}
	return out
}

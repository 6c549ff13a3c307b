package errors

import (
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestToGRPCAndFromGRPC(t *testing.T) {
	e := ToValidation("iban", "pattern_invalid").WithDomain("iban-service")

	err := e.ToGRPC()
	st, _ := status.FromError(err)
	if st.Code() != codes.InvalidArgument {
		t.Fatalf("code mismatch: got %v", st.Code())
	}

	var foundInfo, foundBR bool
	for _, d := range st.Details() {
		switch x := d.(type) {
		case *errdetails.ErrorInfo:
			foundInfo = true
			if x.GetReason() != "validation_failed" || x.GetDomain() != "iban-service" {
				t.Fatalf("error info mismatch: %v", x)
			}
			if x.Metadata["iban"] != "pattern_invalid" {
				t.Fatalf("metadata mismatch: %v", x.Metadata)
			}
		case *errdetails.BadRequest:
			foundBR = true
			if len(x.FieldViolations) != 1 || x.FieldViolations[0].GetField() != "iban" {
				t.Fatalf("badrequest violations mismatch: %v", x.FieldViolations)
			}
		}
	}
	if !foundInfo || !foundBR {
		t.Fatalf("missing details: ErrorInfo=%v BadRequest=%v", foundInfo, foundBR)
	}

	back := FromGRPC(err)
	if back.Code != codes.InvalidArgument || back.Reason != "validation_failed" || back.Domain != "iban-service" {
		t.Fatalf("roundtrip mismatch: %+v", back)
	}
	if back.Details["iban"] != "pattern_invalid" {
		t.Fatalf("details mismatch after roundtrip: %v", back.Details)
	}
	if _, leaked := back.Details[violationReasonMetadataPrefix+"iban"]; leaked {
		t.Fatalf("internal metadata leaked into details")
	}
	if len(back.Violations) != 1 || back.Violations[0].Reason != "pattern_invalid" {
		t.Fatalf("violation reason not restored: %+v", back.Violations)
	}
}

func TestFromGRPCNonStatus(t *testing.T) {
	out := FromGRPC(errString("plain"))
	if out.Code != codes.Unknown {
		t.Fatalf("expected Unknown, got %v", out.Code)
	}
}

type errString string

func (e errString) Error() string { return string(e) }

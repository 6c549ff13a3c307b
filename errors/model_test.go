package errors

import (
	"strings"
	"testing"

	"google.golang.org/grpc/codes"
)

func TestErrorResponseToString(t *testing.T) {
	e := New("Invalid argument", codes.InvalidArgument, map[string]string{"iban": "pattern_invalid"}).
		WithReason("validation_failed")
	s := e.ToString()
	for _, want := range []string{`"code":"InvalidArgument"`, `"reason":"validation_failed"`, `"iban":"pattern_invalid"`} {
		if !strings.Contains(s, want) {
			t.Fatalf("missing %s in %s", want, s)
		}
	}
	if e.Error() != s {
		t.Fatalf("Error() should match ToString()")
	}
}

func TestBuildersDoNotShareDetails(t *testing.T) {
	base := InvalidArgument().WithDetail("a", "1")
	left := base.WithDetail("b", "2")
	right := base.WithDetails(map[string]string{"c": "3"})

	if _, ok := base.Details["b"]; ok {
		t.Fatalf("base mutated by WithDetail")
	}
	if _, ok := left.Details["c"]; ok {
		t.Fatalf("left mutated by sibling WithDetails")
	}
	if right.Details["a"] != "1" || right.Details["c"] != "3" {
		t.Fatalf("unexpected details: %v", right.Details)
	}
}

func TestNewClonesDetails(t *testing.T) {
	in := map[string]string{"k": "v"}
	e := New("m", codes.Internal, in)
	in["k"] = "changed"
	if e.Details["k"] != "v" {
		t.Fatalf("New must copy details")
	}
}

func TestViolationsFromMap(t *testing.T) {
	if ViolationsFromMap(nil) != nil {
		t.Fatalf("expected nil for empty map")
	}
	vs := ViolationsFromMap(map[string]string{"iban": "country_unsupported"})
	if len(vs) != 1 || vs[0].Field != "iban" || vs[0].Reason != "country_unsupported" {
		t.Fatalf("unexpected violations: %+v", vs)
	}
}

func TestViolationsFromMapSortedAndHasViolation(t *testing.T) {
	e := ValidationFields(map[string]string{"iban": "pattern_invalid", "bic": "invalid_bic"})
	if e.Violations[0].Field != "bic" || e.Violations[1].Field != "iban" {
		t.Fatalf("violations not sorted: %+v", e.Violations)
	}
	if !e.HasViolation("IBAN", "pattern_invalid") || !e.HasViolation("bic", "") {
		t.Fatalf("HasViolation missed an entry: %+v", e.Violations)
	}
	if e.HasViolation("iban", "country_unsupported") {
		t.Fatalf("HasViolation matched the wrong reason")
	}
}

func TestWithDetailsDoesNotAlias(t *testing.T) {
	base := InvalidArgument().WithDetail("a", "1")
	next := base.WithDetail("b", "2")
	if _, ok := base.Details["b"]; ok {
		t.Fatalf("builder mutated the receiver's details")
	}
	if next.Details["a"] != "1" || next.Details["b"] != "2" {
		t.Fatalf("details not merged: %v", next.Details)
	}
}

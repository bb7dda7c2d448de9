package apierror

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorStringIncludesCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Transport(cause)
	want := "network error, please retry: dial tcp: connection refused"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}

	plain := Validation("quantity must be positive")
	if plain.Error() != "quantity must be positive" {
		t.Fatalf("Error() = %q", plain.Error())
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("status 502")
	err := Remote("bad gateway", cause)
	if !errors.Is(err, cause) {
		t.Fatal("errors.Is should reach the wrapped cause")
	}
	if errors.Unwrap(err) != cause {
		t.Fatal("Unwrap should return the cause")
	}
}

func TestIsMatchesByKind(t *testing.T) {
	err := Unauthorized("", fmt.Errorf("status 401"))
	if !errors.Is(err, Unauthorized("", nil)) {
		t.Fatal("two unauthorized errors should match by kind")
	}
	if errors.Is(err, Unauthenticated("")) {
		t.Fatal("different kinds must not match")
	}
	if errors.Is(err, errors.New("unauthorized")) {
		t.Fatal("plain errors must not match a taxonomy error")
	}
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		want Kind
	}{
		{Unauthenticated(""), KindUnauthenticated},
		{Unauthorized("", nil), KindUnauthorized},
		{Validation("bad input"), KindValidation},
		{Validationf("quantity %d out of range", -1), KindValidation},
		{Remote("", nil), KindRemote},
		{Transport(errors.New("timeout")), KindTransport},
		{fmt.Errorf("wrapped: %w", Remote("upstream failed", nil)), KindRemote},
		{errors.New("plain"), Kind("")},
		{nil, Kind("")},
	}
	for _, tc := range cases {
		if got := KindOf(tc.err); got != tc.want {
			t.Errorf("KindOf(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestIsKindThroughWrapping(t *testing.T) {
	err := fmt.Errorf("add to cart: %w", Unauthenticated(""))
	if !IsKind(err, KindUnauthenticated) {
		t.Fatal("IsKind should see through fmt.Errorf wrapping")
	}
	if IsKind(err, KindRemote) {
		t.Fatal("IsKind matched the wrong kind")
	}
}

func TestDefaultMessages(t *testing.T) {
	if Unauthenticated("").Message != "not logged in" {
		t.Fatalf("unexpected default: %q", Unauthenticated("").Message)
	}
	if Unauthorized("", nil).Message != "session rejected, please log in again" {
		t.Fatalf("unexpected default: %q", Unauthorized("", nil).Message)
	}
	if Remote("", nil).Message != "request failed" {
		t.Fatalf("unexpected default: %q", Remote("", nil).Message)
	}
}

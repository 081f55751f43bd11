package datasource

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestLookupErrorMatchesSentinel(t *testing.T) {
	tests := []struct {
		kind     Kind
		sentinel error
	}{
		{KindInvalidInput, ErrInvalidInput},
		{KindNotFound, ErrNotFound},
		{KindMalformed, ErrMalformed},
		{KindTransport, ErrTransport},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := fmt.Errorf("page: %w", NewError("geocode", tt.kind, errors.New("boom")))
			if !errors.Is(err, tt.sentinel) {
				t.Fatalf("errors.Is(%v, %v) = false", err, tt.sentinel)
			}
			if got := KindOf(err); got != tt.kind {
				t.Fatalf("KindOf = %v, want %v", got, tt.kind)
			}
		})
	}
}

func TestLookupErrorDoesNotMatchOtherKinds(t *testing.T) {
	err := NewError("forecast", KindNotFound, nil)
	if errors.Is(err, ErrTransport) {
		t.Fatal("not-found error matched ErrTransport")
	}
	if got, want := err.Error(), "forecast: not found"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestKindOfContextErrors(t *testing.T) {
	if got := KindOf(context.DeadlineExceeded); got != KindTransport {
		t.Fatalf("KindOf(deadline) = %v, want transport", got)
	}
	if got := KindOf(errors.New("other")); got != KindUnknown {
		t.Fatalf("KindOf(other) = %v, want unknown", got)
	}
	if got := KindOf(nil); got != KindUnknown {
		t.Fatalf("KindOf(nil) = %v, want unknown", got)
	}
}

func TestValidateCoordinates(t *testing.T) {
	valid := [][2]float64{{0, 0}, {52.52, 13.405}, {-90, 180}, {90, -180}}
	for _, c := range valid {
		if err := ValidateCoordinates(c[0], c[1]); err != nil {
			t.Errorf("ValidateCoordinates(%v, %v) = %v", c[0], c[1], err)
		}
	}

	invalid := [][2]float64{{91, 0}, {0, -181}}
	for _, c := range invalid {
		if err := ValidateCoordinates(c[0], c[1]); err == nil {
			t.Errorf("ValidateCoordinates(%v, %v) accepted", c[0], c[1])
		}
	}
}

package amm

import (
	"errors"
	"testing"
)

func TestBurnAmount(t *testing.T) {
	burn, err := BurnAmount(d("250"), DefaultBurnFee)
	if err != nil {
		t.Fatalf("BurnAmount error: %v", err)
	}
	if !burn.Equal(d("2.5")) {
		t.Fatalf("BurnAmount = %s, want 2.5", burn)
	}

	net, err := DeductBurn(d("250"), DefaultBurnFee)
	if err != nil {
		t.Fatalf("DeductBurn error: %v", err)
	}
	if !net.Equal(d("247.5")) {
		t.Fatalf("DeductBurn = %s, want 247.5", net)
	}
}

func TestBurnAmount_Errors(t *testing.T) {
	if _, err := BurnAmount(d("1"), d("1")); !errors.Is(err, ErrInvalidFee) {
		t.Fatalf("expected ErrInvalidFee, got %v", err)
	}
	if _, err := DeductBurn(d("-1"), DefaultBurnFee); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

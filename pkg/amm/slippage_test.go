package amm

import (
	"errors"
	"testing"
)

func TestApplySlippage(t *testing.T) {
	got, err := ApplySlippage(d("50"), d("0.01"), Min)
	if err != nil {
		t.Fatalf("ApplySlippage error: %v", err)
	}
	if !got.Equal(d("49.5")) {
		t.Fatalf("min bound: got %s want 49.5", got)
	}

	got, err = ApplySlippage(d("50"), d("0.01"), Max)
	if err != nil {
		t.Fatalf("ApplySlippage error: %v", err)
	}
	if !got.Equal(d("50.5")) {
		t.Fatalf("max bound: got %s want 50.5", got)
	}
}

func TestApplySlippage_ZeroTolerance(t *testing.T) {
	amount := d("123.456789012345678901")
	lo, err := ApplySlippage(amount, d("0"), Min)
	if err != nil {
		t.Fatalf("ApplySlippage error: %v", err)
	}
	hi, err := ApplySlippage(amount, d("0"), Max)
	if err != nil {
		t.Fatalf("ApplySlippage error: %v", err)
	}
	if !lo.Equal(amount) || !hi.Equal(amount) {
		t.Fatalf("zero tolerance changed amount: min=%s max=%s", lo, hi)
	}
}

func TestApplySlippage_Bounds(t *testing.T) {
	if _, err := ApplySlippage(d("1"), d("0.5"), Min); err != nil {
		t.Fatalf("0.5 should be accepted: %v", err)
	}
	for _, tol := range []string{"-0.0001", "0.5000001", "1"} {
		if _, err := ApplySlippage(d("1"), d(tol), Max); !errors.Is(err, ErrInvalidSlippage) {
			t.Fatalf("tolerance %s: expected ErrInvalidSlippage, got %v", tol, err)
		}
	}
	if _, err := ApplySlippage(d("1"), d("0.01"), Direction(9)); !errors.Is(err, ErrInvalidSlippage) {
		t.Fatalf("unknown direction: expected ErrInvalidSlippage, got %v", err)
	}
}

func TestParseDirection(t *testing.T) {
	cases := map[string]Direction{"min": Min, "MAX": Max, " max ": Max}
	for in, want := range cases {
		got, err := ParseDirection(in)
		if err != nil {
			t.Fatalf("ParseDirection(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseDirection(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseDirection("down"); !errors.Is(err, ErrInvalidSlippage) {
		t.Fatalf("expected ErrInvalidSlippage, got %v", err)
	}
}

func TestApplySlippage_NegativeAmount(t *testing.T) {
	for _, dir := range []Direction{Min, Max} {
		if _, err := ApplySlippage(d("-1"), d("0.01"), dir); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("direction %s: expected ErrInvalidAmount, got %v", dir, err)
		}
	}
	got, err := ApplySlippage(d("0"), d("0.01"), Min)
	if err != nil || !got.IsZero() {
		t.Fatalf("zero amount: got %s, %v", got, err)
	}
}

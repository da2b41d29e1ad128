package amm

import (
	"errors"
	"testing"
)

func TestTruncateToPrecision(t *testing.T) {
	cases := []struct {
		amount    string
		precision int
		want      string
	}{
		{"1.23456789", 4, "1.2345"},
		{"1.99999", 0, "1"},
		{"1", 12, "1.000000000000"},
		{"0", 2, "0.00"},
		{"0.000000000000000000999", 18, "0.000000000000000000"},
		{"123456789012345678.123456789012345678999", 18, "123456789012345678.123456789012345678"},
		{"-1.239", 2, "-1.23"},
	}

	for _, tc := range cases {
		got, err := TruncateToPrecision(d(tc.amount), tc.precision)
		if err != nil {
			t.Fatalf("TruncateToPrecision(%s, %d): %v", tc.amount, tc.precision, err)
		}
		if got != tc.want {
			t.Fatalf("TruncateToPrecision(%s, %d) = %s, want %s", tc.amount, tc.precision, got, tc.want)
		}
	}
}

func TestTruncateToPrecision_Invalid(t *testing.T) {
	for _, p := range []int{-1, MaxPrecision + 1} {
		if _, err := TruncateToPrecision(d("1"), p); !errors.Is(err, ErrInvalidPrecision) {
			t.Fatalf("precision %d: expected ErrInvalidPrecision, got %v", p, err)
		}
	}
}

func TestParseAmount(t *testing.T) {
	got, err := ParseAmount(" 12.5 ")
	if err != nil {
		t.Fatalf("ParseAmount error: %v", err)
	}
	if !got.Equal(d("12.5")) {
		t.Fatalf("ParseAmount = %s", got)
	}

	for _, s := range []string{"", "abc", "1.2.3", "NaN"} {
		if _, err := ParseAmount(s); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("ParseAmount(%q): expected ErrInvalidAmount, got %v", s, err)
		}
	}
	for _, s := range []string{"0", "-3"} {
		if _, err := ParsePositiveAmount(s); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("ParsePositiveAmount(%q): expected ErrInvalidAmount, got %v", s, err)
		}
	}
}

package amm

import (
	"testing"

	"github.com/shopspring/decimal"
)

func BenchmarkQuoteExactIn(b *testing.B) {
	rIn := decimal.RequireFromString("13451234.567890123456")
	rOut := decimal.RequireFromString("98765432.109876543210")
	in := decimal.RequireFromString("1000.000001")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = QuoteExactIn(in, rIn, rOut, SwapFee)
	}
}

func BenchmarkQuoteExactOut(b *testing.B) {
	rIn := decimal.RequireFromString("13451234.567890123456")
	rOut := decimal.RequireFromString("98765432.109876543210")
	out := decimal.RequireFromString("1000.000001")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = QuoteExactOut(out, rIn, rOut, SwapFee)
	}
}

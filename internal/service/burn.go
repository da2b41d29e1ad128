package service

import (
	"fmt"
	"strings"
)

// BurnOrder decides whether the burn fee of a burn token is folded into the
// bounded side of a quote before the slippage bound is applied (subtracted
// from the minimum output, added to the maximum input), or only reported
// alongside the bounds.
type BurnOrder int

const (
	// BurnAfterSlippage computes slippage bounds from the raw quote and
	// reports burn amounts alongside them.
	BurnAfterSlippage BurnOrder = iota
	// BurnBeforeSlippage nets the burn out of the bounded amount first.
	BurnBeforeSlippage
)

func (o BurnOrder) String() string {
	switch o {
	case BurnAfterSlippage:
		return "after"
	case BurnBeforeSlippage:
		return "before"
	default:
		return fmt.Sprintf("BurnOrder(%d)", int(o))
	}
}

// ParseBurnOrder accepts "after" or "before".
func ParseBurnOrder(s string) (BurnOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "after", "":
		return BurnAfterSlippage, nil
	case "before":
		return BurnBeforeSlippage, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrBurnOrder)
	}
}

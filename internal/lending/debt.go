package lending

import (
	"liquidator/core"

	"github.com/shopspring/decimal"
)

// Debt outstanding debt of a position under share accounting:
//
//	borrowShares / totalBorrowShares * totalBorrowAssets
//
// A pool without borrow shares carries no debt.
func Debt(position *core.Position) decimal.Decimal {
	pool := position.Pool
	if pool.TotalBorrowShares.IsZero() {
		return decimal.Zero
	}

	// multiply before dividing
	return position.BorrowShares.
		Mul(pool.TotalBorrowAssets).
		Div(pool.TotalBorrowShares)
}

package core

import (
	"context"
	"math/big"
)

// IPoolService lending pool contract reader
type IPoolService interface {
	// Unhealthy reports whether the position is liquidatable
	Unhealthy(ctx context.Context, position *Position) Result[bool]
}

// IOracleService price oracle contract reader
type IOracleService interface {
	FloorPrice(ctx context.Context, oracle, tokenID string) Result[*big.Int]
}

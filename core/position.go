package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// Ref an indexer entity referenced by id
type Ref struct {
	ID string `json:"id"`
}

// Pool lending pool state as indexed
type Pool struct {
	ID                string          `json:"id"`
	TotalSupplyShares decimal.Decimal `json:"totalSupplyShares"`
	TotalSupplyAssets decimal.Decimal `json:"totalSupplyAssets"`
	TotalBorrowShares decimal.Decimal `json:"totalBorrowShares"`
	TotalBorrowAssets decimal.Decimal `json:"totalBorrowAssets"`
	UtilizationRate   decimal.Decimal `json:"utilizationRate"`
	// loan to value
	LTV decimal.Decimal `json:"ltv"`
	// liquidation threshold
	LTH             decimal.Decimal `json:"lth"`
	BorrowRate      decimal.Decimal `json:"borrowRate"`
	LendingRate     decimal.Decimal `json:"lendingRate"`
	Oracle          string          `json:"oracle"`
	IRM             Ref             `json:"irm"`
	LoanToken       Ref             `json:"loanToken"`
	CollateralToken Ref             `json:"collateralToken"`
	Curator         Ref             `json:"curator"`
}

// Position a borrow position backed by a single nft, id is "poolId-tokenId"
type Position struct {
	ID           string          `json:"id"`
	Account      Ref             `json:"account"`
	Token        Ref             `json:"token"`
	BorrowShares decimal.Decimal `json:"borrowShares"`
	Bidder       *Ref            `json:"bidder"`
	Pool         Pool            `json:"pool"`
}

// BidderID bidder account id, nil when nobody bid
func (p *Position) BidderID() *string {
	if p.Bidder == nil || p.Bidder.ID == "" {
		return nil
	}

	id := p.Bidder.ID
	return &id
}

// IPositionService position fetcher interface
type IPositionService interface {
	List(ctx context.Context) ([]*Position, error)
}

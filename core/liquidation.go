package core

import (
	"context"
	"errors"
	"time"
)

// ErrLiquidationNotFound no liquidation row for the key
var ErrLiquidationNotFound = errors.New("liquidation not found")

// Liquidatable a liquidatable position joined with its nft metadata
type Liquidatable struct {
	Position     *Position `json:"position"`
	TokenID      string    `json:"tokenId"`
	NFT          NFT       `json:"nft"`
	Liquidatable bool      `json:"liquidatable"`
	FloorPrice   string    `json:"floorPrice"`
	Debt         string    `json:"debt"`
}

// CollateralAddress the nft contract address, the pool collateral token when no metadata matched
func (l *Liquidatable) CollateralAddress() string {
	if addr := l.NFT.ContractAddress(); addr != "" {
		return addr
	}

	if l.Position != nil {
		return l.Position.Pool.CollateralToken.ID
	}

	return ""
}

// Liquidation persisted liquidation summary, unique by collateral address and token id
type Liquidation struct {
	ID                uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	CollateralAddress string    `gorm:"size:66;not null;uniqueIndex:idx_liquidations_collateral_token" json:"collateral_address"`
	TokenID           string    `gorm:"size:78;not null;uniqueIndex:idx_liquidations_collateral_token" json:"token_id"`
	NFTName           string    `gorm:"size:255" json:"nft_name"`
	NFTSymbol         string    `gorm:"size:64" json:"nft_symbol"`
	Liquidatable      bool      `json:"liquidatable"`
	Account           string    `gorm:"size:66;index" json:"account"`
	LoanAddress       string    `gorm:"size:66" json:"loan_address"`
	FloorPrice        string    `gorm:"size:80" json:"floor_price"`
	Debt              string    `gorm:"size:80" json:"debt"`
	Bidder            *string   `gorm:"size:66" json:"bidder"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// NewLiquidation build the summary row of a liquidatable position
func NewLiquidation(l *Liquidatable) *Liquidation {
	row := &Liquidation{
		CollateralAddress: l.CollateralAddress(),
		TokenID:           l.TokenID,
		NFTName:           l.NFT.ContractName(),
		NFTSymbol:         l.NFT.ContractSymbol(),
		Liquidatable:      l.Liquidatable,
		FloorPrice:        l.FloorPrice,
		Debt:              l.Debt,
	}

	if p := l.Position; p != nil {
		row.Account = p.Account.ID
		row.LoanAddress = p.Pool.LoanToken.ID
		row.Bidder = p.BidderID()
	}

	return row
}

// NewLiquidations build the summary rows of liquidatable positions
func NewLiquidations(items []*Liquidatable) []*Liquidation {
	rows := make([]*Liquidation, 0, len(items))
	for _, item := range items {
		rows = append(rows, NewLiquidation(item))
	}

	return rows
}

// LiquidationQuery filters for listing liquidations
type LiquidationQuery struct {
	Collateral string `schema:"collateral"`
	Account    string `schema:"account"`
}

// ILiquidationStore liquidation store interface
type ILiquidationStore interface {
	Upsert(ctx context.Context, liquidation *Liquidation) error
	UpsertAll(ctx context.Context, liquidations []*Liquidation) error
	Find(ctx context.Context, collateral, tokenID string) (*Liquidation, error)
	All(ctx context.Context) ([]*Liquidation, error)
	List(ctx context.Context, query LiquidationQuery) ([]*Liquidation, error)
}

// IScanner liquidatable position aggregator
type IScanner interface {
	Liquidatable(ctx context.Context) ([]*Liquidatable, error)
}

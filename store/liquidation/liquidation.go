package liquidation

import (
	"context"
	"errors"
	"time"

	"liquidator/core"
	"liquidator/store/db"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type liquidationStore struct {
	db *db.DB
}

// New new liquidation store
func New(db *db.DB) core.ILiquidationStore {
	return &liquidationStore{
		db: db,
	}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		return db.Update().AutoMigrate(&core.Liquidation{})
	})
}

var upsertColumns = []string{
	"nft_name",
	"nft_symbol",
	"liquidatable",
	"account",
	"loan_address",
	"floor_price",
	"debt",
	"bidder",
	"updated_at",
}

func (s *liquidationStore) Upsert(ctx context.Context, liquidation *core.Liquidation) error {
	now := time.Now()
	if liquidation.CreatedAt.IsZero() {
		liquidation.CreatedAt = now
	}
	liquidation.UpdatedAt = now

	return s.db.Update().WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "collateral_address"}, {Name: "token_id"}},
		DoUpdates: clause.AssignmentColumns(upsertColumns),
	}).Create(liquidation).Error
}

// UpsertAll upserts every row concurrently, each in its own statement.
// It waits for all of them and returns the first error.
func (s *liquidationStore) UpsertAll(ctx context.Context, liquidations []*core.Liquidation) error {
	var g errgroup.Group

	for idx := range liquidations {
		liquidation := liquidations[idx]
		g.Go(func() error {
			return s.Upsert(ctx, liquidation)
		})
	}

	return g.Wait()
}

func (s *liquidationStore) Find(ctx context.Context, collateral, tokenID string) (*core.Liquidation, error) {
	var liquidation core.Liquidation
	err := s.db.View().WithContext(ctx).
		Where("collateral_address = ? AND token_id = ?", collateral, tokenID).
		First(&liquidation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, core.ErrLiquidationNotFound
	}

	if err != nil {
		return nil, err
	}

	return &liquidation, nil
}

func (s *liquidationStore) All(ctx context.Context) ([]*core.Liquidation, error) {
	return s.List(ctx, core.LiquidationQuery{})
}

func (s *liquidationStore) List(ctx context.Context, query core.LiquidationQuery) ([]*core.Liquidation, error) {
	tx := s.db.View().WithContext(ctx)
	if query.Collateral != "" {
		tx = tx.Where("collateral_address = ?", query.Collateral)
	}

	if query.Account != "" {
		tx = tx.Where("account = ?", query.Account)
	}

	liquidations := make([]*core.Liquidation, 0)
	if err := tx.Order("id").Find(&liquidations).Error; err != nil {
		return nil, err
	}

	return liquidations, nil
}

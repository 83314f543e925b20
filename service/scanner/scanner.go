package scanner

import (
	"context"
	"math/big"

	"liquidator/core"
	"liquidator/internal/lending"
	"liquidator/pkg/number"

	"github.com/fox-one/pkg/logger"
	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
)

type scanner struct {
	positions core.IPositionService
	nfts      core.INFTService
	pools     core.IPoolService
	oracles   core.IOracleService
	metrics   *Metrics
}

// New new liquidatable position scanner
func New(
	positions core.IPositionService,
	nfts core.INFTService,
	pools core.IPoolService,
	oracles core.IOracleService,
	metrics *Metrics,
) core.IScanner {
	if metrics == nil {
		metrics = NewMetrics(nil)
	}

	return &scanner{
		positions: positions,
		nfts:      nfts,
		pools:     pools,
		oracles:   oracles,
		metrics:   metrics,
	}
}

// Liquidatable fetch positions and nft metadata, then check positions one by one
// in fetch order. A fetch failure aborts the scan; a failed health check counts
// as healthy and a failed price read as zero.
func (s *scanner) Liquidatable(ctx context.Context) ([]*core.Liquidatable, error) {
	log := logger.FromContext(ctx).WithFields(logrus.Fields{
		"service": "scanner",
		"run":     uuid.Must(uuid.NewV4()).String(),
	})
	ctx = logger.WithContext(ctx, log)

	positions, err := s.positions.List(ctx)
	if err != nil {
		s.metrics.scans.WithLabelValues("failed").Inc()
		return nil, err
	}

	nfts, err := s.nfts.Owned(ctx)
	if err != nil {
		s.metrics.scans.WithLabelValues("failed").Inc()
		return nil, err
	}

	results := make([]*core.Liquidatable, 0)
	for _, position := range positions {
		if position == nil {
			log.Warnln("skip null position")
			continue
		}

		if item := s.check(ctx, log, position, nfts); item != nil {
			results = append(results, item)
		}
	}

	s.metrics.scans.WithLabelValues("ok").Inc()
	log.Infof("%d of %d positions liquidatable", len(results), len(positions))
	return results, nil
}

func (s *scanner) check(ctx context.Context, log *logrus.Entry, position *core.Position, nfts []*core.NFT) *core.Liquidatable {
	log = log.WithField("position", position.ID)
	s.metrics.positions.Inc()

	health := s.pools.Unhealthy(ctx, position)
	if health.Failed() {
		s.metrics.checkErrors.Inc()
		log.WithError(health.Err).Warnln("health check failed, treated as healthy")
	}

	if !health.ValueOr(false) {
		log.Debugln("healthy")
		return nil
	}

	_, tokenID, err := lending.ParsePositionID(position.ID)
	if err != nil {
		log.WithError(err).Warnln("unhealthy position with malformed id")
	}

	price := s.oracles.FloorPrice(ctx, position.Pool.Oracle, tokenID)
	if price.Failed() {
		s.metrics.priceErrors.Inc()
		log.WithError(price.Err).Warnln("read floor price failed, reported as zero")
	}

	if position.Pool.TotalBorrowShares.IsZero() {
		log.Warnln("pool has no borrow shares, debt is zero")
	}

	s.metrics.found.Inc()
	return &core.Liquidatable{
		Position:     position,
		TokenID:      tokenID,
		NFT:          matchNFT(nfts, tokenID),
		Liquidatable: true,
		FloorPrice:   number.BigString(price.ValueOr(big.NewInt(0))),
		Debt:         lending.Debt(position).String(),
	}
}

// matchNFT first nft with exactly this token id, or an empty one
func matchNFT(nfts []*core.NFT, tokenID string) core.NFT {
	if tokenID == "" {
		return core.NFT{}
	}

	for _, nft := range nfts {
		if nft != nil && string(nft.TokenID) == tokenID {
			return *nft
		}
	}

	return core.NFT{}
}

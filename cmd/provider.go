package cmd

import (
	"liquidator/core"
	"liquidator/pkg/eth"
	"liquidator/service/nft"
	"liquidator/service/oracle"
	"liquidator/service/pool"
	"liquidator/service/position"
	"liquidator/service/scanner"
	"liquidator/store/db"
	"liquidator/store/liquidation"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/prometheus/client_golang/prometheus"
)

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

func provideChain() *ethclient.Client {
	c, err := eth.Dial(cfg.Chain.RPC)
	if err != nil {
		panic(err)
	}

	return c
}

// ---------------store-----------------------------------------

func provideLiquidationStore(db *db.DB) core.ILiquidationStore {
	return liquidation.New(db)
}

// ------------------service------------------------------------

func providePositionService() core.IPositionService {
	return position.New(cfg.Indexer)
}

func provideNFTService() core.INFTService {
	return nft.New(cfg.NFTProxy)
}

func providePoolService(caller eth.ContractCaller) core.IPoolService {
	s, err := pool.New(caller, cfg.Chain.PoolFactory)
	if err != nil {
		panic(err)
	}

	return s
}

func provideOracleService(caller eth.ContractCaller) core.IOracleService {
	return oracle.New(caller)
}

func provideScanner(reg prometheus.Registerer) core.IScanner {
	chain := provideChain()

	return scanner.New(
		providePositionService(),
		provideNFTService(),
		providePoolService(chain),
		provideOracleService(chain),
		scanner.NewMetrics(reg),
	)
}

package core

import "liquidator/store/db"

// Config liquidator config
type Config struct {
	App      App       `json:"app"`
	DB       db.Config `json:"db"`
	Indexer  Indexer   `json:"indexer"`
	NFTProxy NFTProxy  `json:"nft_proxy"`
	Chain    Chain     `json:"chain"`
	Worker   Worker    `json:"worker"`
}

// App app config
type App struct {
	Location string `json:"location"`
}

// Indexer graphql indexer config
type Indexer struct {
	Endpoint string `json:"endpoint" valid:"required,url"`
	Token    string `json:"token"`
	// First the page size requested from the indexer, 1000 by default
	First int `json:"first"`
}

// NFTProxy owned nft proxy config
type NFTProxy struct {
	Endpoint string `json:"endpoint" valid:"required,url"`
	Owner    string `json:"owner" valid:"required"`
	Contract string `json:"contract" valid:"required"`
}

// Chain evm rpc config
type Chain struct {
	RPC         string `json:"rpc" valid:"required,url"`
	PoolFactory string `json:"pool_factory" valid:"required"`
}

// Worker scan worker config
type Worker struct {
	// Spec cron spec, "@every 5m" by default
	Spec string `json:"spec"`
}

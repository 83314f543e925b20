package config

import (
	"testing"

	"liquidator/core"

	"github.com/stretchr/testify/assert"
)

func validConfig() *core.Config {
	return &core.Config{
		Indexer:  core.Indexer{Endpoint: "https://indexer.example.com/graphql"},
		NFTProxy: core.NFTProxy{Endpoint: "https://nft.example.com/api/nfts", Owner: "0xowner", Contract: "0xnft"},
		Chain:    core.Chain{RPC: "https://rpc.example.com", PoolFactory: "0x00000000000000000000000000000000000000fa"},
	}
}

func TestDefaults(t *testing.T) {
	cfg := validConfig()
	withDefaults(cfg)

	assert.Equal(t, "postgres", cfg.DB.Dialect)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 1000, cfg.Indexer.First)
	assert.Equal(t, "@every 5m", cfg.Worker.Spec)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(validConfig()))

	cfg := validConfig()
	cfg.Indexer.Endpoint = ""
	assert.Error(t, Validate(cfg))

	cfg = validConfig()
	cfg.Chain.RPC = "not a url"
	assert.Error(t, Validate(cfg))

	cfg = validConfig()
	cfg.NFTProxy.Owner = ""
	assert.Error(t, Validate(cfg))
}

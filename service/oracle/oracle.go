package oracle

import (
	"context"
	"fmt"
	"math/big"

	"liquidator/core"
	"liquidator/pkg/eth"
)

// ABI nft floor price oracle view
const ABI = `[{
  "type": "function",
  "name": "getPrice",
  "stateMutability": "view",
  "inputs": [{"name": "tokenId", "type": "uint256"}],
  "outputs": [{"name": "", "type": "uint256"}]
}]`

var oracleABI = eth.MustParseABI(ABI)

type oracleService struct {
	caller eth.ContractCaller
}

// New new oracle service, the oracle address comes with each call
func New(caller eth.ContractCaller) core.IOracleService {
	return &oracleService{caller: caller}
}

// FloorPrice price of the token reported by the oracle, kept as a big integer
func (s *oracleService) FloorPrice(ctx context.Context, oracle, tokenID string) core.Result[*big.Int] {
	contract, err := eth.Bind(s.caller, oracle, oracleABI)
	if err != nil {
		return core.Fail[*big.Int](err)
	}

	tid, err := eth.ParseUint256(tokenID)
	if err != nil {
		return core.Fail[*big.Int](err)
	}

	values, err := contract.Call(ctx, "getPrice", tid)
	if err != nil {
		return core.Fail[*big.Int](err)
	}

	price, ok := values[0].(*big.Int)
	if !ok {
		return core.Fail[*big.Int](fmt.Errorf("getPrice returned %T", values[0]))
	}

	return core.Ok(price)
}

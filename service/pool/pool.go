package pool

import (
	"context"
	"fmt"

	"liquidator/core"
	"liquidator/internal/lending"
	"liquidator/pkg/eth"
)

// ABI lending pool factory view used to detect unhealthy positions
const ABI = `[{
  "type": "function",
  "name": "unhealthyList",
  "stateMutability": "view",
  "inputs": [
    {"name": "poolId", "type": "bytes32"},
    {"name": "tokenId", "type": "uint256"}
  ],
  "outputs": [{"name": "", "type": "bool"}]
}]`

var poolABI = eth.MustParseABI(ABI)

type poolService struct {
	factory *eth.Contract
}

// New new pool service reading the factory contract at address
func New(caller eth.ContractCaller, address string) (core.IPoolService, error) {
	factory, err := eth.Bind(caller, address, poolABI)
	if err != nil {
		return nil, err
	}

	return &poolService{factory: factory}, nil
}

// Unhealthy report whether the position is in the factory's unhealthy list.
// Failures are returned inside the result, never as a panic or error value.
func (s *poolService) Unhealthy(ctx context.Context, position *core.Position) core.Result[bool] {
	poolID, tokenID, err := lending.ParsePositionID(position.ID)
	if err != nil {
		return core.Fail[bool](err)
	}

	pid, err := eth.ParseBytes32(poolID)
	if err != nil {
		return core.Fail[bool](err)
	}

	tid, err := eth.ParseUint256(tokenID)
	if err != nil {
		return core.Fail[bool](err)
	}

	values, err := s.factory.Call(ctx, "unhealthyList", pid, tid)
	if err != nil {
		return core.Fail[bool](err)
	}

	unhealthy, ok := values[0].(bool)
	if !ok {
		return core.Fail[bool](fmt.Errorf("unhealthyList returned %T", values[0]))
	}

	return core.Ok(unhealthy)
}

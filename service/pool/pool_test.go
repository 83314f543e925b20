package pool

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"liquidator/core"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const factory = "0x00000000000000000000000000000000000000fa"

type fakeCaller struct {
	unhealthy map[string]bool
	err       error
	calls     int
}

func (f *fakeCaller) CallContract(ctx context.Context, call ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	method := poolABI.Methods["unhealthyList"]
	args, err := method.Inputs.Unpack(call.Data[4:])
	if err != nil {
		return nil, err
	}

	poolID := common.Hash(args[0].([32]byte))
	tokenID := args[1].(*big.Int)
	return method.Outputs.Pack(f.unhealthy[poolID.Hex()+"/"+tokenID.String()])
}

func TestUnhealthy(t *testing.T) {
	caller := &fakeCaller{unhealthy: map[string]bool{
		common.HexToHash("0xabc").Hex() + "/7": true,
	}}

	s, err := New(caller, factory)
	require.NoError(t, err)

	r := s.Unhealthy(context.Background(), &core.Position{ID: "0xabc-7"})
	require.False(t, r.Failed(), r.Err)
	assert.True(t, r.Value)

	r = s.Unhealthy(context.Background(), &core.Position{ID: "0xabc-8"})
	require.False(t, r.Failed(), r.Err)
	assert.False(t, r.Value)
}

func TestUnhealthyFailSafe(t *testing.T) {
	caller := &fakeCaller{err: errors.New("execution reverted")}
	s, err := New(caller, factory)
	require.NoError(t, err)

	r := s.Unhealthy(context.Background(), &core.Position{ID: "0xabc-7"})
	assert.True(t, r.Failed())
	assert.False(t, r.ValueOr(false))

	for _, id := range []string{"0xabc", "0xabc-7-1", "zz-7", "0xabc-seven"} {
		r := s.Unhealthy(context.Background(), &core.Position{ID: id})
		assert.True(t, r.Failed(), id)
		assert.False(t, r.ValueOr(false), id)
	}

	assert.Equal(t, 1, caller.calls, "malformed ids never reach the chain")
}

func TestNewInvalidAddress(t *testing.T) {
	_, err := New(&fakeCaller{}, "factory")
	assert.Error(t, err)
}

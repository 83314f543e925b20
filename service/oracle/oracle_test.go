package oracle

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oracleAddr = "0x00000000000000000000000000000000000000aa"

type fakeCaller struct {
	price *big.Int
	err   error
	to    common.Address
}

func (f *fakeCaller) CallContract(ctx context.Context, call ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	f.to = *call.To
	if f.err != nil {
		return nil, f.err
	}

	return oracleABI.Methods["getPrice"].Outputs.Pack(f.price)
}

func TestFloorPrice(t *testing.T) {
	huge, _ := new(big.Int).SetString("250000000000000000000000000000", 10)
	caller := &fakeCaller{price: huge}

	r := New(caller).FloorPrice(context.Background(), oracleAddr, "7")
	require.False(t, r.Failed(), r.Err)
	assert.Equal(t, huge.String(), r.Value.String())
	assert.Equal(t, common.HexToAddress(oracleAddr), caller.to)
}

func TestFloorPriceFailSafe(t *testing.T) {
	s := New(&fakeCaller{err: errors.New("rpc timeout")})

	r := s.FloorPrice(context.Background(), oracleAddr, "7")
	assert.True(t, r.Failed())
	assert.Equal(t, int64(0), r.ValueOr(big.NewInt(0)).Int64())

	r = s.FloorPrice(context.Background(), "", "7")
	assert.True(t, r.Failed())

	r = s.FloorPrice(context.Background(), oracleAddr, "x")
	assert.True(t, r.Failed())
}

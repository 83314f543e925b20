package eth

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// ErrEmptyReturn the call returned no data, usually no contract at the address
var ErrEmptyReturn = errors.New("empty return data")

// ContractCaller defines the subset of the Ethereum RPC used for view calls.
type ContractCaller interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// Dial initialises an EVM RPC client for the provided endpoint.
func Dial(endpoint string) (*ethclient.Client, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		return nil, fmt.Errorf("evm endpoint required")
	}

	return ethclient.Dial(trimmed)
}

// MustParseABI parse a json abi definition, panic on error
func MustParseABI(def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(err)
	}

	return parsed
}

// Contract read only binding of an abi to a deployed address
type Contract struct {
	address common.Address
	abi     abi.ABI
	caller  ContractCaller
}

// Bind bind abi to the contract at address
func Bind(caller ContractCaller, address string, contractABI abi.ABI) (*Contract, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("invalid contract address %q", address)
	}

	return &Contract{
		address: common.HexToAddress(address),
		abi:     contractABI,
		caller:  caller,
	}, nil
}

// Call eth_call method at the latest block and unpack its outputs
func (c *Contract) Call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}

	msg := ethereum.CallMsg{
		To:   &c.address,
		Data: data,
	}

	out, err := c.caller.CallContract(ctx, msg, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s on %s: %w", method, c.address.Hex(), err)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("call %s on %s: %w", method, c.address.Hex(), ErrEmptyReturn)
	}

	values, err := c.abi.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}

	return values, nil
}

// ParseBytes32 hex string, with or without 0x, left padded to 32 bytes
func ParseBytes32(s string) (common.Hash, error) {
	h := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if h == "" || len(h) > 2*common.HashLength {
		return common.Hash{}, fmt.Errorf("invalid bytes32 %q", s)
	}

	for _, c := range h {
		if !isHexChar(c) {
			return common.Hash{}, fmt.Errorf("invalid bytes32 %q", s)
		}
	}

	return common.HexToHash(h), nil
}

// ParseUint256 decimal or 0x prefixed hex integer
func ParseUint256(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok || v.Sign() < 0 || v.BitLen() > 256 {
		return nil, fmt.Errorf("invalid uint256 %q", s)
	}

	return v, nil
}

func isHexChar(c rune) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
